// Package labels holds the label management core: the name validation rule,
// the modal coordinator reducer and the screen controller that turns user
// intents into store mutations and notifications.
package labels
