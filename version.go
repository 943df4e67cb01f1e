package main

// Version is the semcommit CLI version, bumped with semcommit --descriptor version.go.
var Version = "0.1.0"
