package runtime

// Initializer is implemented by components that need one-time setup
// before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to props being
// (re)applied. It runs before every render, including the first.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies props from a freshly built component onto the live
// instance, so state survives re-renders of the parent.
type PropUpdater interface {
	ApplyProps(source Component)
}
