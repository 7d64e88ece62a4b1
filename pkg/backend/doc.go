// Package backend opens the session store selected by configuration.
//
// SESSION_BACKEND picks one of memory, redis, memcache, mongo or postgres;
// the matching section of Config supplies the connection settings. Open
// returns a Backend bundling the session.Store with a health probe, a
// background maintenance loop and a Close hook, so a binary can switch
// stores without code changes.
package backend
