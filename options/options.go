// Package options provides the functional option plumbing shared by the transfer helper and the client backends.
package options

// NewOption is implemented by any option that configures a T at construction time.
// Example:
// ```
//
//	type loggerOpt struct{ logger *zap.Logger }
//	func (o *loggerOpt) Apply(t *ftpx.Transfer) { ... }
//	func (o *loggerOpt) NewOptionName() string {
//		return "logger"
//	}
//
// ```
type NewOption[T any] interface {
	Apply(*T)
	NewOptionName() string
}

// ApplyOptions applies each option to target, in order.  Later options win.
func ApplyOptions[T any](target *T, opts ...NewOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(target)
	}
}
