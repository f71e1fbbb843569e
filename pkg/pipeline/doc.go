// Package pipeline runs one j2render invocation end to end:
//
//	discover or take sources -> load each -> merge in order
//	-> build overrides -> merge overrides last -> render -> write
//
// Every failure is returned as an *errors.Error whose code names the failing
// stage (DISCOVERY, SOURCE, OVERRIDE, EMPTY_CONTEXT, RENDER, OUTPUT). Nothing
// is written unless rendering succeeded.
package pipeline
