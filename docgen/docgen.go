// Package docgen turns an annotated source file into a markdown technical
// document.
package docgen

import (
	"context"
	"fmt"
	"strings"
)

// Completer is the single generation call docgen needs.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const documentationSystem = `You are a developer.

Your goal is to write the technical documentation for a piece of code given.
You will be given code of all the user functions involved.

Follow this template if it is an API endpoint:
## METHOD /api/path

<description>

### Request

The request should be a JSON object with the following properties:

- ` + "`<property1>`" + ` (<type>, <required|optional>): <description>
- ` + "`<property2>`" + ` (<type>, <required|optional>): <description>

Example with CURL:

` + "```bash\n<curl command>\n```" + `

### Response

<description of the result and response format>

Example:

` + "```json\n<JSON response example>\n```" + `

### Error

<description of the error response format>

<description of possible errors>

- ` + "`<error1>`" + `: <description>
- ` + "`<error2>`" + `: <description>

Example:

` + "```json\n<example of error response format>\n```" + `


If the code that is given is not an API endpoint, then follow this template:
## <actionName>

<description>

### Input

The input should be a JSON object with the following properties:

- ` + "`<property1>`" + ` (<type>, <required|optional>): <description>

Example:

` + "```json\n<example of input>\n```" + `

### Output

<description of the output and response format>

Example:

` + "```json\n<example of output>\n```" + `

### Error

<description of the error response format>

<description of possible errors>

- ` + "`<error1>`" + `: <description>
- ` + "`<error2>`" + `: <description>

Example:

` + "```json\n<example of error response format>\n```"

// Generate writes the markdown document for annotated source code. The
// annotated form is used on purpose: the generated docstrings give the model
// intent the bare code does not carry.
func Generate(ctx context.Context, c Completer, annotated string) (string, error) {
	user := fmt.Sprintf("User functions with comments:\n%s", annotated)
	reply, err := c.Complete(ctx, documentationSystem, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply) + "\n", nil
}
