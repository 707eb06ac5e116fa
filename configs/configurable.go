package configs

// Configurable is implemented by setting types; ConfigExpr names the setting for diagnostics.
type Configurable interface {
	ConfigExpr() string
}
