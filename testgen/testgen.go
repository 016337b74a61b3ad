// Package testgen writes unit tests for discovered class methods, one
// generation call per method in discovery order.
package testgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/autodoc-ai/autodoc/comment"
	"github.com/autodoc-ai/autodoc/logger"
)

// Completer provides the generation calls testgen needs.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	ImportStatement(ctx context.Context, codePath, testPath string) (string, error)
}

const writeTestSystem = `You are a smart developer. You can do this! You will write unit
tests that have a high quality.

Reply with the source code for the test only.
Do not include the class or imports in your response. I will add the imports myself.

If there is no test to write, reply with "# No test to write" and
nothing more. Do not include the class in your response.

You will be given the code and you need to describe the test cases that should be done for. Use the information from the code and the test case specifications to create a comprehensive set of tests that cover all possible scenarios and edge cases.

Explain the progress of the test case in comments:
 - Preparation: what should be done to prepare the test case: should I create entities in the database before running the test? if yes, I need to delete them after the test
 - Execution: what should be done to run the test case
 - Checking: what should be done to check the result of the test case
 - Cleaning: what should be done to clean the test case: entities created during the Preparation or Execution phase should be deleted

Each test case should be independent from other test cases and should not depend on the order of execution.

If a test case is not possible to be done with the available action or if you need to mock a response then you should not do the test case.


Example:

` + "```" + `
def test_function():
    ...
` + "```" + `

I will give you $200 if you adhere to the instructions and write a high quality test.
Do not write test classes, only methods.`

// Result is a generated test file plus bookkeeping about the pass.
type Result struct {
	Source  string
	Written int
	Skipped int
}

// Generate builds the test file for source: the import header first, then
// one test block per method in order. A failed method is skipped with a log
// line; the rest of the file is still produced.
func Generate(ctx context.Context, c Completer, source string, methods []string, codePath, testPath string) (*Result, error) {
	header, err := c.ImportStatement(ctx, codePath, testPath)
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n\n")

	res := &Result{}
	for _, method := range methods {
		logger.Infow("writing test",
			logger.FieldOperation, "testgen",
			"method", method,
		)
		user := fmt.Sprintf("Here is a class:\n'''\n%s\n'''\n\nImplement a test for the method %q.", source, method)
		reply, err := c.Complete(ctx, writeTestSystem, user)
		if err != nil {
			logger.Warnw("test generation failed, skipping method",
				"method", method,
				logger.FieldError, err,
			)
			res.Skipped++
			continue
		}
		code := comment.ExtractFenced(reply)
		if code == "" {
			code = reply + "\n"
		}
		out.WriteString(code)
		out.WriteString("\n\n")
		res.Written++
	}

	res.Source = out.String()
	return res, nil
}
