package errors

// Registered error codes.
const (
	CodeInvalidAttributeKind = "H001"
	CodeInvalidChildKind     = "H002"
	CodeNestingViolation     = "H003"
	CodeUnknownElement       = "H004"

	CodeConfigInvalid  = "H100"
	CodeConfigNotFound = "H101"
	CodeConfigPort     = "H102"

	CodeDocumentRead      = "H200"
	CodeUnknownAttribute  = "H201"
	CodeDocumentMalformed = "H202"
	CodeDocumentFormat    = "H203"

	CodePreviewListen   = "H300"
	CodePublishUpload   = "H310"
	CodePublishNoBucket = "H311"

	CodeTemplateNotFound = "H400"
	CodeFileExists       = "H401"
)

// Sentinels for errors.Is. They are match targets only and must not be
// mutated through the With* setters.
var (
	InvalidAttributeKind = &BuildError{Code: CodeInvalidAttributeKind}
	InvalidChildKind     = &BuildError{Code: CodeInvalidChildKind}
	NestingViolation     = &BuildError{Code: CodeNestingViolation}
	UnknownElement       = &BuildError{Code: CodeUnknownElement}
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Build errors (H001-H099)

	CodeInvalidAttributeKind: {
		Category: CategoryBuild,
		Message:  "Invalid attribute kind",
	},
	CodeInvalidChildKind: {
		Category: CategoryBuild,
		Message:  "Invalid child kind",
	},
	CodeNestingViolation: {
		Category: CategoryBuild,
		Message:  "Self-closing element cannot have children",
	},

	CodeUnknownElement: {
		Category: CategoryBuild,
		Message:  "Unknown element",
	},

	// Config errors (H100-H199)

	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "htmlbuilder.json could not be read or parsed.",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No htmlbuilder.json was found.",
	},
	CodeConfigPort: {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "Port must be between 0 and 65535.",
	},

	// Document errors (H200-H299)

	CodeDocumentRead: {
		Category: CategoryDocument,
		Message:  "Document could not be read",
	},
	CodeUnknownAttribute: {
		Category: CategoryDocument,
		Message:  "Unknown attribute",
	},
	CodeDocumentMalformed: {
		Category: CategoryDocument,
		Message:  "Malformed document node",
	},
	CodeDocumentFormat: {
		Category: CategoryDocument,
		Message:  "Unsupported document format",
		Detail:   "Documents must be .json, .yaml or .yml files.",
	},

	// Preview and publish errors (H300-H399)

	CodePreviewListen: {
		Category: CategoryPreview,
		Message:  "Preview server failed",
	},
	CodePublishUpload: {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	CodePublishNoBucket: {
		Category: CategoryPublish,
		Message:  "No bucket configured",
		Detail:   "Set publish.bucket in htmlbuilder.json or pass --bucket.",
	},

	// CLI errors (H400-H499)

	CodeTemplateNotFound: {
		Category: CategoryCLI,
		Message:  "Template not found",
	},
	CodeFileExists: {
		Category: CategoryCLI,
		Message:  "File already exists",
		Detail:   "Refusing to overwrite an existing file.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
