package outbound

// TaskDispatcher is satisfied by *ants.Pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
