package glsl

import "slices"

// Reference word lists for GLSL 4.60. Some words intentionally appear in
// more than one list; the classifier resolves them by precedence.

var typeWords = []string{
	"float", "double", "int", "void", "bool", "true", "false",
	"mat2", "mat3", "mat4", "dmat2", "dmat3", "dmat4",
	"mat2x2", "mat2x3", "mat2x4", "dmat2x2", "dmat2x3", "dmat2x4",
	"mat3x2", "mat3x3", "mat3x4", "dmat3x2", "dmat3x3", "dmat3x4",
	"mat4x2", "mat4x3", "mat4x4", "dmat4x2", "dmat4x3", "dmat4x4",
	"vec2", "vec3", "vec4", "ivec2", "ivec3", "ivec4",
	"bvec2", "bvec3", "bvec4", "dvec2", "dvec3", "dvec4",
	"uint", "uvec2", "uvec3", "uvec4", "atomic_uint",
	"sampler1D", "sampler2D", "sampler3D", "samplerCube",
	"sampler1DShadow", "sampler2DShadow", "samplerCubeShadow",
	"sampler1DArray", "sampler2DArray",
	"sampler1DArrayShadow", "sampler2DArrayShadow",
	"isampler1D", "isampler2D", "isampler3D", "isamplerCube",
	"isampler1DArray", "isampler2DArray",
	"usampler1D", "usampler2D", "usampler3D", "usamplerCube",
	"usampler1DArray", "usampler2DArray",
	"sampler2DRect", "sampler2DRectShadow", "isampler2DRect", "usampler2DRect",
	"samplerBuffer", "isamplerBuffer", "usamplerBuffer",
	"sampler2DMS", "isampler2DMS", "usampler2DMS",
	"sampler2DMSArray", "isampler2DMSArray", "usampler2DMSArray",
	"samplerCubeArray", "samplerCubeArrayShadow", "isamplerCubeArray", "usamplerCubeArray",
	"image1D", "iimage1D", "uimage1D",
	"image2D", "iimage2D", "uimage2D",
	"image3D", "iimage3D", "uimage3D",
	"image2DRect", "iimage2DRect", "uimage2DRect",
	"imageCube", "iimageCube", "uimageCube",
	"imageBuffer", "iimageBuffer", "uimageBuffer",
	"image1DArray", "iimage1DArray", "uimage1DArray",
	"image2DArray", "iimage2DArray", "uimage2DArray",
	"imageCubeArray", "iimageCubeArray", "uimageCubeArray",
	"image2DMS", "iimage2DMS", "uimage2DMS",
	"image2DMSArray", "iimage2DMSArray", "uimage2DMSArray",
	"sampler", "samplerShadow",
	"subpassInput", "isubpassInput", "usubpassInput",
	"subpassInputMS", "isubpassInputMS", "usubpassInputMS",
}

var qualifierWords = []string{
	"attribute", "const", "uniform", "varying", "buffer", "shared",
	"coherent", "volatile", "restrict", "readonly", "writeonly",
	"layout", "centroid", "flat", "smooth", "noperspective",
	"patch", "sample", "in", "out", "inout", "invariant", "precise",
	"lowp", "mediump", "highp",
}

var keywordWords = []string{
	"break", "continue", "do", "for", "while", "if", "else",
	"subroutine", "discard", "return", "precision", "struct",
	"switch", "default", "case",
}

var deprecatedKeywordWords = []string{
	"attribute", "varying",
}

var reservedKeywordWords = []string{
	"input", "output", "asm", "class", "union", "enum", "typedef",
	"template", "this", "packed", "resource", "goto", "inline",
	"noinline", "common", "partition", "active", "long", "short",
	"half", "fixed", "unsigned", "superp", "public", "static",
	"extern", "external", "interface", "hvec2", "hvec3", "hvec4",
	"fvec2", "fvec3", "fvec4", "filter", "sizeof", "cast",
	"namespace", "using", "sampler3DRect",
}

var preprocessorDirectiveWords = []string{
	"define", "undef", "if", "ifdef", "ifndef", "else", "elif",
	"endif", "error", "pragma", "extension", "version", "line",
}

var preprocessorBuiltinWords = []string{
	"__LINE__", "__FILE__", "__VERSION__",
}

var builtinWords = []string{
	"abs", "acos", "acosh", "all", "any", "anyInvocation",
	"allInvocations", "allInvocationsEqual", "asin", "asinh", "atan",
	"atanh", "atomicAdd", "atomicAnd", "atomicCompSwap", "atomicCounter",
	"atomicCounterDecrement", "atomicCounterIncrement", "atomicExchange",
	"atomicMax", "atomicMin", "atomicOr", "atomicXor", "barrier",
	"bitCount", "bitfieldExtract", "bitfieldInsert", "bitfieldReverse",
	"ceil", "clamp", "cos", "cosh", "cross", "degrees", "determinant",
	"dFdx", "dFdxCoarse", "dFdxFine", "dFdy", "dFdyCoarse", "dFdyFine",
	"distance", "dot", "fma", "EmitStreamVertex", "EmitVertex",
	"EndPrimitive", "EndStreamPrimitive", "equal", "exp", "exp2",
	"faceforward", "findLSB", "findMSB", "floatBitsToInt",
	"floatBitsToUint", "floor", "fract", "frexp", "fwidth",
	"fwidthCoarse", "fwidthFine", "greaterThan", "greaterThanEqual",
	"groupMemoryBarrier", "imageAtomicAdd", "imageAtomicAnd",
	"imageAtomicCompSwap", "imageAtomicExchange", "imageAtomicMax",
	"imageAtomicMin", "imageAtomicOr", "imageAtomicXor", "imageLoad",
	"imageSamples", "imageSize", "imageStore", "imulExtended",
	"intBitsToFloat", "interpolateAtCentroid", "interpolateAtOffset",
	"interpolateAtSample", "inverse", "inversesqrt", "isinf", "isnan",
	"ldexp", "length", "lessThan", "lessThanEqual", "log", "log2",
	"matrixCompMult", "max", "memoryBarrier", "memoryBarrierAtomicCounter",
	"memoryBarrierBuffer", "memoryBarrierImage", "memoryBarrierShared",
	"min", "mix", "mod", "modf", "noise1", "noise2", "noise3", "noise4",
	"normalize", "not", "notEqual", "outerProduct", "packDouble2x32",
	"packHalf2x16", "packSnorm2x16", "packSnorm4x8", "packUnorm2x16",
	"packUnorm4x8", "pow", "radians", "reflect", "refract", "round",
	"roundEven", "sign", "sin", "sinh", "smoothstep", "sqrt", "step",
	"subpassLoad", "tan", "tanh", "texelFetch", "texelFetchOffset",
	"texture", "textureGather", "textureGatherOffset",
	"textureGatherOffsets", "textureGrad", "textureGradOffset",
	"textureLod", "textureLodOffset", "textureOffset", "textureProj",
	"textureProjGrad", "textureProjGradOffset", "textureProjLod",
	"textureProjLodOffset", "textureProjOffset", "textureQueryLevels",
	"textureQueryLod", "textureSamples", "textureSize", "transpose",
	"trunc", "uaddCarry", "uintBitsToFloat", "umulExtended",
	"unpackDouble2x32", "unpackHalf2x16", "unpackSnorm2x16",
	"unpackSnorm4x8", "unpackUnorm2x16", "unpackUnorm4x8", "usubBorrow",
}

var deprecatedBuiltinWords = []string{
	"noise1", "noise2", "noise3", "noise4",
	"texture1D", "texture1DProj", "texture1DLod", "texture1DProjLod",
	"texture2D", "texture2DProj", "texture2DLod", "texture2DProjLod",
	"texture2DRect", "texture2DRectProj",
	"texture3D", "texture3DProj", "texture3DLod", "texture3DProjLod",
	"shadow1D", "shadow1DProj", "shadow1DLod", "shadow1DProjLod",
	"shadow2D", "shadow2DProj", "shadow2DLod", "shadow2DProjLod",
	"textureCube", "textureCubeLod",
}

var deprecatedVariableWords = []string{
	"gl_FragColor", "gl_FragData", "gl_MaxVarying", "gl_MaxVaryingFloats",
	"gl_MaxVaryingComponents",
}

const (
	// variablePattern picks out built-in state such as gl_Position while
	// leaving user identifiers like gl_foo alone. Trailing digits cover the
	// indexed ones such as gl_MultiTexCoord0.
	variablePattern = `\bgl_[A-Z][A-Za-z_]+[0-9]*\b`

	// extensionPattern follows the vendor prefix naming of extension
	// macros, e.g. GL_ARB_shader_draw_parameters or GL_EXT_gpu_shader4.
	extensionPattern = `\bGL_[A-Z]+_[A-Za-z0-9_]+\b`
)

// A Table holds the words and structural patterns of every category.
type Table struct {
	Words map[Category][]string

	// Patterns holds the structural pattern of a category, if it has one.
	// The Preprocessor category is special: its words are directive names
	// and are wrapped in the line pattern by the compiler.
	Patterns map[Category]string
}

// DefaultTable returns a copy of the reference GLSL tables.
func DefaultTable() Table {
	return Table{
		Words: map[Category][]string{
			Preprocessor:        slices.Clone(preprocessorDirectiveWords),
			Type:                slices.Clone(typeWords),
			DeprecatedKeyword:   slices.Clone(deprecatedKeywordWords),
			ReservedKeyword:     slices.Clone(reservedKeywordWords),
			Qualifier:           slices.Clone(qualifierWords),
			Keyword:             slices.Clone(keywordWords),
			PreprocessorBuiltin: slices.Clone(preprocessorBuiltinWords),
			DeprecatedBuiltin:   slices.Clone(deprecatedBuiltinWords),
			Builtin:             slices.Clone(builtinWords),
			DeprecatedVariable:  slices.Clone(deprecatedVariableWords),
		},
		Patterns: map[Category]string{
			Variable:  variablePattern,
			Extension: extensionPattern,
		},
	}
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := Table{
		Words:    make(map[Category][]string, len(t.Words)),
		Patterns: make(map[Category]string, len(t.Patterns)),
	}
	for c, words := range t.Words {
		out.Words[c] = slices.Clone(words)
	}
	for c, p := range t.Patterns {
		out.Patterns[c] = p
	}
	return out
}

// Contains reports whether word is listed under category c.
func (t Table) Contains(c Category, word string) bool {
	return slices.Contains(t.Words[c], word)
}
