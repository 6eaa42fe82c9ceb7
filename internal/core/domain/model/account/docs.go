// Package account contains the user aggregate and the closed role enum
// that drives every authorization decision in the system. A user starts
// roleless, may self-assign a working role exactly once, and afterwards
// only an administrator can change it.
package account
