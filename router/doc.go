// Package router finds a station sequence between two named stations.
//
// The network is searched as an implicit graph whose nodes are
// (station name, line) pairs: edges are positional adjacency along a line
// and zero-distance interchange hops between the lines serving one name.
// A breadth-first search yields a hop-count-shortest route; route finding
// ignores the clock entirely.
package router
