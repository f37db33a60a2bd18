// Package store holds the SSOT tree and answers dotted-path lookups against it.
//
// The tree is loaded once through the config package and never mutated.
// Lookups do not fail: a path that does not resolve yields a Result whose
// Found flag is false and whose text is a visible diagnostic such as
//
//	{ERROR: ec2.instance_type not found}
//
// Only loading can fail, and a load failure stops the run.
package store
