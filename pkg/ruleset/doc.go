// Package ruleset compiles flat YAML rule definitions into validator rules.
//
// A document maps field names to a list of rules taken from the validator
// catalog:
//
//	fields:
//	  email:
//	    - required
//	    - email
//	  username:
//	    - minLength: 3
//	    - pattern: '^[a-z0-9_]+$'
//	      message: Only lowercase letters, digits and underscores
//	  age:
//	    - min: 18
//
// Every entry is either a bare rule name or a mapping of the name to its
// argument, optionally with a message that replaces the default one. Values
// are validated as strings; min and max parse them as numbers first.
package ruleset
