package guard

// registerBuiltins wires the default rule vocabulary into a registry.
func registerBuiltins(r *Registry) {
	r.MustRegister("required", requiredFactory)
	r.MustRegister("empty", emptyFactory)
	r.MustRegister("length", lengthFactory)
	r.MustRegister("between", betweenFactory)
	r.MustRegister("in", inFactory)
	r.MustRegister("eq", eqFactory)
	r.MustRegister("le", leFactory)
	r.MustRegister("lt", ltFactory)
	r.MustRegister("ge", geFactory)
	r.MustRegister("gt", gtFactory)
	r.MustRegister("odd", oddFactory)
	r.MustRegister("even", evenFactory)
	r.MustRegister("positive", positiveFactory)
	r.MustRegister("negative", negativeFactory)
	r.MustRegister("regex", regexFactory)
}
