package fsmd

// Version is printed in the session banner. Release builds override it with
// -ldflags "-X github.com/aretw0/fsmd.Version=...".
var Version = "v1.0"
