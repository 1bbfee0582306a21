// Package services describes the collaborators the dispatcher hands a
// resolved configuration to: the model, the initialization context, the
// output writers and the inference routines themselves. The routines are
// opaque here; this package only fixes their signatures and the exact
// parameter set each one receives.
package services
