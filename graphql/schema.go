package graphql

import (
	"strings"
	"sync"

	_ "embed"

	gql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphqls
var schemaBase string

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema to the base document. Call from init().
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}

// --- Schema arg types (used by resolvers for graphql-go method matching) ---

type IDArgs struct {
	ID gql.ID
}

type RespondArgs struct {
	Utterance string
}

type ProductIDArgs struct {
	ProductID gql.ID
}

type OptionInput struct {
	Type  string
	Value string
}

type QuoteArgs struct {
	ProductID gql.ID
	Options   *[]OptionInput
}

type ExtensionArgs struct {
	Name string
	Args *string
}
