package summarize

import (
	"fmt"
	"strings"

	"github.com/autodoc-ai/autodoc/syntax"
)

const functionDocSystemSwift = `You generate documentation comments for provided Swift functions, following the official Apple and Swift guidelines. The comment includes:

1. A concise description of the function's purpose and data flow.
2. A list of the function's parameters, with a description for each.
3. A description of the function's return value, if applicable.
4. Any additional notes or context, if necessary.

Example function:
internal static func _typeMismatch(at path: [CodingKey], expectation: Any.Type, reality: Any) -> DecodingError {
    let description = "Expected to decode \(expectation) but found \(_typeDescription(of: reality)) instead."
    return .typeMismatch(expectation, Context(codingPath: path, debugDescription: description))
}

Generated comment:
/// Returns a ` + "`.typeMismatch`" + ` error describing the expected type.
///
/// - parameter path: The path of ` + "`CodingKey`" + `s taken to decode a value of this type.
/// - parameter expectation: The type expected to be encountered.
/// - parameter reality: The value that was encountered instead of the expected type.
/// - returns: A ` + "`DecodingError`" + ` with the appropriate path and debug description.`

const functionDocSystemPython = `You generate comprehensive documentation comments and highly informative docstrings for Python functions entered by the user. A well-structured docstring is essential for helping developers understand and use the function effectively. A standard Python docstring typically consists of the following sections:

1. Description: a clear and concise explanation of what the function does.
2. Arguments: the function's parameters and their types, both mandatory and optional, each with its purpose and expected data type.
3. Returns: what the returned value represents and its data type, or an explicit note that the function returns None.
4. Raises: any exceptions the function may raise and the conditions under which they occur.

Please follow Google docstring style guidelines to generate a docstring for the function given by the user.

Example function with generated comments:
def fahrenheit_to_celsius(fahrenheit):
    '''
    Converts a temperature from Fahrenheit to Celsius.

    Args:
        fahrenheit (float): The temperature in degrees Fahrenheit.

    Returns:
        float: The temperature converted to degrees Celsius, rounded to two decimals.
    '''
    celsius = (fahrenheit - 32) * 5/9
    return round(celsius, 2)`

const functionDocSystemLine = `You generate documentation comments for the provided source code, following the conventions of the language it is written in. The comment includes:

1. A concise description of the purpose and data flow.
2. A list of parameters, with a description for each.
3. A description of the return value, if applicable.
4. Any additional notes or context, if necessary.

Reply with the comment text only.`

const combinedSummarySystem = `Your job is to produce a final standalone concise documentation comment for a type described by code or comments, following the official Apple and Swift guidelines if swift code. If it is python code follow Google docstring style guidelines.
The comment includes:
A concise description of the code's purpose and data flow.
Any additional notes or context, if necessary.`

const summarizeSystem = `Write a concise standalone documentation comment for a type described by code or comments, following the official Apple and Swift guidelines if swift code, otherwise use Google docstring style guidelines.`

// functionDocSystem picks the docstring instruction for a language. Brace
// languages without a dedicated instruction share the generic line-comment
// one.
func functionDocSystem(lang syntax.Language) string {
	switch lang {
	case syntax.LanguageSwift:
		return functionDocSystemSwift
	case syntax.LanguagePython:
		return functionDocSystemPython
	default:
		return functionDocSystemLine
	}
}

func functionDocUser(code string) string {
	return fmt.Sprintf("Function implementation:\n```\n%s\n```\n\nPlease provide the documentation comment based on the given function implementation.", code)
}

func combinedSummaryUser(docs []string) string {
	return fmt.Sprintf("We have documentation comments for the individual members of a type:\n------------\n%s\n------------\nProduce one refined documentation comment for the type as a whole. If a member comment isn't useful, ignore it.", strings.Join(docs, "\n\n"))
}

func summarizeUser(code string) string {
	return fmt.Sprintf("\"%s\"\n\nDocumentation comment:", code)
}

func importStatementUser(codePath, testPath string) string {
	return fmt.Sprintf("Here is a path of a file with code: %s.\nHere is the path of a file with tests: %s.\nWrite a proper import statement for the class in the file.", codePath, testPath)
}
