// Package hcl provides the concrete HCL implementation of the definition
// loading interface defined in the `config` package. It is responsible for
// file discovery, HCL parsing, and HCL-to-model translation.
package hcl
