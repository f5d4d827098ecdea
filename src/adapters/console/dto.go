package console

import "encoding/json"

// Request é uma linha de entrada do console.
type Request struct {
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response é uma linha de saída do console.
type Response struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	KindBadRequest     = "BAD_REQUEST"
	KindUnknownCommand = "UNKNOWN_COMMAND"
)

type loginArgs struct {
	Email      string `json:"email"`
	Credential string `json:"credential"`
}

type updateProfileArgs struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type changeCredentialArgs struct {
	NewCredential string `json:"new_credential"`
	OldCredential string `json:"old_credential"`
}

type attributeArgs struct {
	Attribute string `json:"attribute"`
	Email     string `json:"email,omitempty"`
}

type emailArgs struct {
	Email string `json:"email"`
}

type createPostArgs struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

type postArgs struct {
	Index int `json:"index"`
}

type addTagArgs struct {
	Index int    `json:"index"`
	Tag   string `json:"tag"`
}

type postFieldArgs struct {
	Field string `json:"field"`
	Index int    `json:"index"`
}

type contentLineArgs struct {
	Line  int `json:"line"`
	Index int `json:"index"`
}

type assertConnectedArgs struct {
	Owner string `json:"owner"`
	Other string `json:"other"`
}

type interactionArgs struct {
	Email string `json:"email"`
	Index int    `json:"index"`
}

type adjustScoreArgs struct {
	Delta int `json:"delta"`
}
