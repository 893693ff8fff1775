package typeschema

// Package typeschema converts runtime type descriptions into JSON Schema
// documents.
//
// A type description (see typedesc) is a tagged-variant tree covering
// primitives, records, enumerations, unions, parameterized collections,
// literals, annotated types, and callable parameter lists. Convert classifies
// each node, descends into composite members, flattens unions, and assembles
// a jsonschema.Schema usable with any JSON-Schema-compatible validator.
//
// Design policy:
// - Keep only public APIs in the root package; the schema model lives under
//   jsonschema/ and descriptions with their builders under typedesc/.
// - Conversion is a pure function of the description and the supplied hooks;
//   no state is shared across calls.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	desc := typedesc.Record("User").
//		Field("id", typedesc.Int()).
//		Field("email", typedesc.Optional(typedesc.String())).
//		Build()
//	s, err := typeschema.Convert(desc)
//
//	fn := typedesc.Callable("resize").
//		Param("width", typedesc.Int()).
//		Param("mode", typedesc.String()).Default("fit").
//		Build()
//	s, err = typeschema.ConvertCallable(fn)
//
// Callers can override classification per node with ConvertOpt.Classifier,
// replace the annotated-doc rule with ConvertOpt.DocExtractor, and let
// external model systems self-describe through the SelfDescribing interface.
