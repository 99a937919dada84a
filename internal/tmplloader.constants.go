package internal

// Path separators recognised when normalising directory paths
const (
	PathSeparator     = "/"
	PathSeparatorsAll = "/\\"
)

// ScalarKey is the property name a scalar receives when cast to an object
const ScalarKey = "scalar"
