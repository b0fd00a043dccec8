// Package httpapi mounts the session lifecycle operations on an HTTP router,
// one JSON endpoint per operation:
//
//	GET  /sessions/{login}?origin=...               resolve saved client session
//	PUT  /sessions/{login}?origin=...               save session (body: sessionStorage, windowName)
//	POST /sessions/{login}/reset                    reset live backend session
//	POST /sessions/{login}/apply?origin=...         restore saved backend session
//	PUT  /sessions/{login}/storage-patch?origin=... save storage patch
//	GET  /sessions/{login}/storage-patch?origin=... resolve storage patch
//
// Missing-data outcomes surface as 404 (resolve endpoints) or as
// {"restored": false} (apply); an ambiguous credential set maps to 409 and a
// storage-clear timeout to 504. The package is the abstracted caller surface
// of the lifecycle core, not a general transport layer.
package httpapi
