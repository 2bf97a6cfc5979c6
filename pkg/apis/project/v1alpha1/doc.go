// Package v1alpha1 defines the option types that drive project generation:
// the selected database, language and package manager, the resolved [Options]
// and the partially populated [Input] read from flags, environment and config.
package v1alpha1
