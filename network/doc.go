// Package network loads the MRT station map and indexes it in memory for
// fast lookups.
//
// The model is built once at startup and is read-only afterwards, so it can
// be shared by any number of concurrent request handlers without locking.
//
// A physical station serving several lines appears in the station map once
// per line, under the same name. Identity for routing purposes is therefore
// the (lowercased) station name; the id carries the line-specific meaning.
package network
