package diag

// Status codes follow the teacher's MMCCNN pattern: MM identifies the
// module (here there is only one, the core engine), CC the category,
// NN the specific error within it.

const moduleCore = 100000 // MM=10, matching the teacher's "start from 10" convention

const (
	catParam     = 100 // token-stream/switch/positional grammar errors
	catValue     = 200 // conversion/validator rejections
	catRequire   = 300 // constraint evaluator violations
	catConfig    = 400 // schema-construction errors
)

const (
	CodeUnknownOption         = moduleCore + catParam + 1
	CodeUnknownDomain         = moduleCore + catParam + 2
	CodeMissingValue          = moduleCore + catParam + 3
	CodeUnexpectedPositional  = moduleCore + catParam + 4
	CodeInvalidValue          = moduleCore + catValue + 1
	CodeMissingRequired       = moduleCore + catRequire + 1
	CodeConditionalRequire    = moduleCore + catRequire + 2
	CodeGroupViolation        = moduleCore + catRequire + 3
	CodeConflict              = moduleCore + catRequire + 4
	CodeSchemaInvalid         = moduleCore + catConfig + 1
)

// CodeFor returns the stable numeric code for a diagnostic kind.
func CodeFor(k Kind) int {
	switch k {
	case KindUnknownOption:
		return CodeUnknownOption
	case KindUnknownDomain:
		return CodeUnknownDomain
	case KindMissingValue:
		return CodeMissingValue
	case KindUnexpectedPositional:
		return CodeUnexpectedPositional
	case KindInvalidValue:
		return CodeInvalidValue
	case KindMissingRequired:
		return CodeMissingRequired
	case KindConditionalRequirement:
		return CodeConditionalRequire
	case KindGroupViolation:
		return CodeGroupViolation
	case KindConflict:
		return CodeConflict
	case KindSchemaInvalid:
		return CodeSchemaInvalid
	default:
		return moduleCore + 900 + 1
	}
}

// ExitCode maps a ParseOutcome's result to a shell exit code, mirroring
// the teacher's output.ExitCode: 0 for success/help/version, a
// category-derived code for failures. The core never calls this itself
// (spec.md §7 leaves exit-code policy to the host); it is exposed for
// host mains that want the teacher's convention rather than a bare
// "non-zero" result.
func ExitCode(failed bool, codes []int) int {
	if !failed {
		return 0
	}
	if len(codes) == 0 {
		return 1
	}
	// first error wins, matching the fixed stage ordering of spec.md §9 Q4.
	category := (codes[0] % 10000) / 100
	switch category {
	case 0:
		return 0
	case 1: // param/usage
		return 2
	case 2: // value
		return 2
	case 3: // constraint/require
		return 9
	case 4: // schema-invalid
		return 8
	default:
		return 1
	}
}
