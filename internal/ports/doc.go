// Package ports defines the interfaces between layers. Service ports are
// implemented by the application layer and called by HTTP handlers.
// Repository and client ports are implemented by outbound adapters (the
// sqlite store, the object store, the token and password adapters) and
// called by the application layer.
package ports
