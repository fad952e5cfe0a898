package main

import "github.com/diploid-siva/coor/codon"

// Summary is storing coor run summary information.
type Summary struct {
	// Version stores coor version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// GCode is the NCBI genetic code id.
	GCode int `json:"gcode"`
	// Reference is the reference gene, empty if the usage was loaded.
	Reference string `json:"reference,omitempty"`
	// UsageName is the database name of the codon usage (if loaded or saved).
	UsageName string `json:"usageName,omitempty"`
	// Usage is the codon usage table.
	Usage codon.Usage `json:"usage"`
	// Results stores all the encoded proteins.
	Results []Result `json:"results"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// Result is a single encoded protein.
type Result struct {
	Name     string `json:"name"`
	Protein  string `json:"protein"`
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
}
