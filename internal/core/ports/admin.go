package ports

// AdminChecker reports whether a caller identity is the administrator
// allowed to mutate the symbol registry. Identity management lives outside
// this layer; implementations are injected at composition time.
type AdminChecker interface {
	IsAdmin(caller string) bool
}

// AdminCheckerFunc adapts a plain predicate to the AdminChecker interface.
type AdminCheckerFunc func(caller string) bool

func (f AdminCheckerFunc) IsAdmin(caller string) bool {
	return f(caller)
}
