package mmcif

// Export some internal functions for testing

var RenderOptional = renderOptional
var FmtFloat = fmtFloat
var ElementSymbol = elementSymbol
var SplitRow = splitRow
var ReadLoop = readLoop
