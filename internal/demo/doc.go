// Package demo is the HTTP surface of the sessiond example: a visit counter
// and login on the default session, and a shopping cart kept in a second,
// independent session namespace.
package demo
