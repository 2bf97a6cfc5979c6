package generator

// Generator renders a file body from a model.
// The manifest generators implement it for package.json and the database config source.
type Generator[T any] interface {
	Generate(model T) ([]byte, error)
}

// Func adapts a plain function to the Generator interface.
type Func[T any] func(model T) ([]byte, error)

// Generate calls f(model).
func (f Func[T]) Generate(model T) ([]byte, error) {
	return f(model)
}
