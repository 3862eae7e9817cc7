package cli

const (
	FlagHome   = "home"
	FlagFormat = "format"
	FlagStrict = "strict"
)
