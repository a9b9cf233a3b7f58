// Package message defines the message model shared by all loaders: argument
// values, the Pattern formatting contract, and resources that group messages
// for a single language.
//
// A Pattern is the boundary to the formatting engine. The package ships a
// placeholder engine compatible with {{name}} substitution, but any engine
// implementing Pattern can back a message:
//
//	msg := message.New("goodbye", message.Placeholder("Goodbye, {{name}}!"))
//	text, errs := msg.Value.Format(message.Args{"name": message.String("Juan")})
//	// text: "Goodbye, Juan!"
//
// A formatting engine reports errors for anything it could not substitute;
// a non-empty error list means the message exists but could not be rendered.
//
// # Resources
//
// Resources carry an ordered list of messages and are the unit handed to
// catalog construction. They can be assembled directly, from nested maps, or
// decoded from YAML, JSON, or TOML documents:
//
//	res, err := message.DecodeYAML([]byte(`
//	hello-world: Hello World!
//	greeting:
//	  _value: Hi, {{name}}!
//	  placeholder: Enter your name
//	`))
//
// Nested maps flatten into dot-separated message identifiers; the special
// "_value" key holds the primary value of a message whose siblings become
// attributes.
package message
