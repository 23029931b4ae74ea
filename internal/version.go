package internal

// Version is the wordbridge release version.
const Version = "0.3.0"
