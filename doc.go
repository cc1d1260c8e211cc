// Package kvkit provides the data-structure substrate of an in-memory
// key-value store: an ordered set (package skiplist), an approximate
// frequency counter (package cms) and a geospatial codec (package geohash),
// plus the thin in-process surfaces that bind them to a store's command
// layer.
//
// # Quick Start
//
//	reg := kvkit.NewRegistry()
//	d := kvkit.NewDispatcher(reg)
//
//	reply := d.Dispatch([]byte("CMS.INITBYDIM visits 100 5"))
//	reply = d.Dispatch([]byte("CMS.INCRBY visits page:/home 1"))
//	reply = d.Dispatch([]byte("CMS.QUERY visits page:/home"))
//	fmt.Println(reply.Status, reply.Message)
//
// A Registry owns named sketch and ordered-set instances; a Dispatcher
// parses textual requests of the form "TYPE[.SUBTYPE] arg1 arg2 ..." and
// encodes each result as a 4-byte big-endian signed status code followed by
// an optional human-readable payload.
//
// # Concurrency
//
// Everything here is synchronous and single-threaded by design. The store's
// event loop (or an external mutex) must serialize access; see the package
// docs of skiplist and cms for the per-instance scratch state that makes
// concurrent calls unsafe.
package kvkit
