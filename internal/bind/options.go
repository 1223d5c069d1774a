package bind

// Options are fixed for the lifetime of a session.
type Options struct {
	Suppressions           []string
	SynthesizeEmptyCatalog bool
	SynthesizeEmptySchema  bool
	// FailOnUnknownColumn aborts on unknown_field. unknown_column never aborts.
	FailOnUnknownColumn bool
	// FailOnUnknownOperation aborts on unsupported_operation and operation_failure.
	FailOnUnknownOperation bool
}

// DefaultOptions synthesizes empty catalogs and schemas and never fails strictly.
func DefaultOptions() Options {
	return Options{
		SynthesizeEmptyCatalog: true,
		SynthesizeEmptySchema:  true,
	}
}

func (o Options) strict(code Code) bool {
	switch code {
	case CodeUnknownField:
		return o.FailOnUnknownColumn
	case CodeUnsupportedOperation, CodeOperationFailure:
		return o.FailOnUnknownOperation
	}
	return false
}
