// Package observer defines the hook every generator in package generate
// invokes as it carves or divides a Grid.
//
// A Hook is a small capability — Initial and Step — rather than a
// language-specific closure protocol, so a driver can swap in terminal
// animation, logging, or nothing (NoOp) without the generator knowing the
// difference. Hooks are synchronous: the generator does not proceed until
// the callback returns.
package observer
