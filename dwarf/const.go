// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

// Tag identifies the kind of a debugging information entry
// (DW_TAG_*).
type Tag uint16

//go:generate stringer -type=Tag
const (
	TagArrayType              Tag = 0x01
	TagClassType              Tag = 0x02
	TagEntryPoint             Tag = 0x03
	TagEnumerationType        Tag = 0x04
	TagFormalParameter        Tag = 0x05
	TagImportedDeclaration    Tag = 0x08
	TagLabel                  Tag = 0x0a
	TagLexDwarfBlock          Tag = 0x0b
	TagMember                 Tag = 0x0d
	TagPointerType            Tag = 0x0f
	TagReferenceType          Tag = 0x10
	TagCompileUnit            Tag = 0x11
	TagStringType             Tag = 0x12
	TagStructType             Tag = 0x13
	TagSubroutineType         Tag = 0x15
	TagTypedef                Tag = 0x16
	TagUnionType              Tag = 0x17
	TagUnspecifiedParameters  Tag = 0x18
	TagVariant                Tag = 0x19
	TagCommonBlock            Tag = 0x1a
	TagCommonInclusion        Tag = 0x1b
	TagInheritance            Tag = 0x1c
	TagInlinedSubroutine      Tag = 0x1d
	TagModule                 Tag = 0x1e
	TagPtrToMemberType        Tag = 0x1f
	TagSetType                Tag = 0x20
	TagSubrangeType           Tag = 0x21
	TagWithStmt               Tag = 0x22
	TagAccessDeclaration      Tag = 0x23
	TagBaseType               Tag = 0x24
	TagCatchDwarfBlock        Tag = 0x25
	TagConstType              Tag = 0x26
	TagConstant               Tag = 0x27
	TagEnumerator             Tag = 0x28
	TagFileType               Tag = 0x29
	TagFriend                 Tag = 0x2a
	TagNamelist               Tag = 0x2b
	TagNamelistItem           Tag = 0x2c
	TagPackedType             Tag = 0x2d
	TagSubprogram             Tag = 0x2e
	TagTemplateTypeParameter  Tag = 0x2f
	TagTemplateValueParameter Tag = 0x30
	TagThrownType             Tag = 0x31
	TagTryDwarfBlock          Tag = 0x32
	TagVariantPart            Tag = 0x33
	TagVariable               Tag = 0x34
	TagVolatileType           Tag = 0x35
	// DWARF 3
	TagDwarfProcedure  Tag = 0x36
	TagRestrictType    Tag = 0x37
	TagInterfaceType   Tag = 0x38
	TagNamespace       Tag = 0x39
	TagImportedModule  Tag = 0x3a
	TagUnspecifiedType Tag = 0x3b
	TagPartialUnit     Tag = 0x3c
	TagImportedUnit    Tag = 0x3d
	TagCondition       Tag = 0x3f
	TagSharedType      Tag = 0x40
	// DWARF 4
	TagTypeUnit            Tag = 0x41
	TagRvalueReferenceType Tag = 0x42
	TagTemplateAlias       Tag = 0x43
)

// Attr identifies an attribute of a debugging information entry
// (DW_AT_*).
type Attr uint16

//go:generate stringer -type=Attr
const (
	AttrSibling           Attr = 0x01
	AttrLocation          Attr = 0x02
	AttrName              Attr = 0x03
	AttrOrdering          Attr = 0x09
	AttrByteSize          Attr = 0x0b
	AttrBitOffset         Attr = 0x0c
	AttrBitSize           Attr = 0x0d
	AttrStmtList          Attr = 0x10
	AttrLowpc             Attr = 0x11
	AttrHighpc            Attr = 0x12
	AttrLanguage          Attr = 0x13
	AttrDiscr             Attr = 0x15
	AttrDiscrValue        Attr = 0x16
	AttrVisibility        Attr = 0x17
	AttrImport            Attr = 0x18
	AttrStringLength      Attr = 0x19
	AttrCommonReference   Attr = 0x1a
	AttrCompDir           Attr = 0x1b
	AttrConstValue        Attr = 0x1c
	AttrContainingType    Attr = 0x1d
	AttrDefaultValue      Attr = 0x1e
	AttrInline            Attr = 0x20
	AttrIsOptional        Attr = 0x21
	AttrLowerBound        Attr = 0x22
	AttrProducer          Attr = 0x25
	AttrPrototyped        Attr = 0x27
	AttrReturnAddr        Attr = 0x2a
	AttrStartScope        Attr = 0x2c
	AttrStrideSize        Attr = 0x2e
	AttrUpperBound        Attr = 0x2f
	AttrAbstractOrigin    Attr = 0x31
	AttrAccessibility     Attr = 0x32
	AttrAddrClass         Attr = 0x33
	AttrArtificial        Attr = 0x34
	AttrBaseTypes         Attr = 0x35
	AttrCallingConvention Attr = 0x36
	AttrCount             Attr = 0x37
	AttrDataMemberLoc     Attr = 0x38
	AttrDeclColumn        Attr = 0x39
	AttrDeclFile          Attr = 0x3a
	AttrDeclLine          Attr = 0x3b
	AttrDeclaration       Attr = 0x3c
	AttrDiscrList         Attr = 0x3d
	AttrEncoding          Attr = 0x3e
	AttrExternal          Attr = 0x3f
	AttrFrameBase         Attr = 0x40
	AttrFriend            Attr = 0x41
	AttrIdentifierCase    Attr = 0x42
	AttrMacroInfo         Attr = 0x43
	AttrNamelistItem      Attr = 0x44
	AttrPriority          Attr = 0x45
	AttrSegment           Attr = 0x46
	AttrSpecification     Attr = 0x47
	AttrStaticLink        Attr = 0x48
	AttrType              Attr = 0x49
	AttrUseLocation       Attr = 0x4a
	AttrVarParam          Attr = 0x4b
	AttrVirtuality        Attr = 0x4c
	AttrVtableElemLoc     Attr = 0x4d
	// DWARF 3
	AttrAllocated    Attr = 0x4e
	AttrAssociated   Attr = 0x4f
	AttrDataLocation Attr = 0x50
	AttrStride       Attr = 0x51
	AttrEntrypc      Attr = 0x52
	AttrUseUTF8      Attr = 0x53
	AttrExtension    Attr = 0x54
	AttrRanges       Attr = 0x55
	AttrTrampoline   Attr = 0x56
	AttrCallColumn   Attr = 0x57
	AttrCallFile     Attr = 0x58
	AttrCallLine     Attr = 0x59
	AttrDescription  Attr = 0x5a
	// DWARF 4
	AttrMainSubprogram Attr = 0x6a
	AttrDataBitOffset  Attr = 0x6b
	AttrConstExpr      Attr = 0x6c
	AttrEnumClass      Attr = 0x6d
	AttrLinkageName    Attr = 0x6e
	AttrExplicit       Attr = 0x63
	AttrObjectPointer  Attr = 0x64
	AttrSignature      Attr = 0x69
	// Vendor extensions used in the wild that this package still
	// recognizes for display purposes.
	AttrMIPSLinkageName Attr = 0x2007
)

// Form identifies the byte-level encoding of an attribute's value
// (DW_FORM_*).
type Form uint16

//go:generate stringer -type=Form
const (
	FormAddr     Form = 0x01
	FormBlock2   Form = 0x03
	FormBlock4   Form = 0x04
	FormData2    Form = 0x05
	FormData4    Form = 0x06
	FormData8    Form = 0x07
	FormString   Form = 0x08
	FormBlock    Form = 0x09
	FormBlock1   Form = 0x0a
	FormData1    Form = 0x0b
	FormFlag     Form = 0x0c
	FormSdata    Form = 0x0d
	FormStrp     Form = 0x0e
	FormUdata    Form = 0x0f
	FormRefAddr  Form = 0x10
	FormRef1     Form = 0x11
	FormRef2     Form = 0x12
	FormRef4     Form = 0x13
	FormRef8     Form = 0x14
	FormRefUdata Form = 0x15
	FormIndirect Form = 0x16
	// DWARF 4
	FormSecOffset   Form = 0x17
	FormExprloc     Form = 0x18
	FormFlagPresent Form = 0x19
	FormRefSig8     Form = 0x20
)

// Children is the children-flag byte of an abbreviation
// (DW_CHILDREN_*).
type Children uint8

const (
	ChildrenNo  Children = 0x00
	ChildrenYes Children = 0x01
)

// Statement program standard opcode encodings.
const (
	lnsCopy           = 1
	lnsAdvancePC      = 2
	lnsAdvanceLine    = 3
	lnsSetFile        = 4
	lnsSetColumn      = 5
	lnsNegateStmt     = 6
	lnsSetBasicBlock  = 7
	lnsConstAddPC     = 8
	lnsFixedAdvancePC = 9

	// DWARF 3
	lnsSetPrologueEnd   = 10
	lnsSetEpilogueBegin = 11
	lnsSetISA           = 12
)

// Statement program extended opcode encodings.
const (
	lneEndSequence = 1
	lneSetAddress  = 2
	lneDefineFile  = 3

	// DWARF 4
	lneSetDiscriminator = 4
)
