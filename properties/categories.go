package properties

// Category identifies a method's role relative to the property it was
// folded into. Each value is a single bit so that a property's per-access
// bitfields can OR together every member method's category.
type Category uint32

const (
	BasicGet Category = 1 << iota
	BasicSet
	MultiGet
	MultiSet
	IndexGet
	IndexSet
	NthGet
	NthSet
	RHSGet
	IndexRHSGet
	NthRHSGet
	StringGet
	EnumSet
	BoolOn
	BoolOff
	MinGet
	MaxGet
	GetNum
	SetNum
	BasicAdd
	MultiAdd
	IndexAdd
	BasicRem
	IndexRem
	RemoveAll
)

var categoryNames = map[Category]string{
	BasicGet:    "BASIC_GET",
	BasicSet:    "BASIC_SET",
	MultiGet:    "MULTI_GET",
	MultiSet:    "MULTI_SET",
	IndexGet:    "INDEX_GET",
	IndexSet:    "INDEX_SET",
	NthGet:      "NTH_GET",
	NthSet:      "NTH_SET",
	RHSGet:      "RHS_GET",
	IndexRHSGet: "INDEX_RHS_GET",
	NthRHSGet:   "NTH_RHS_GET",
	StringGet:   "STRING_GET",
	EnumSet:     "ENUM_SET",
	BoolOn:      "BOOL_ON",
	BoolOff:     "BOOL_OFF",
	MinGet:      "MIN_GET",
	MaxGet:      "MAX_GET",
	GetNum:      "GET_NUM",
	SetNum:      "SET_NUM",
	BasicAdd:    "BASIC_ADD",
	MultiAdd:    "MULTI_ADD",
	IndexAdd:    "INDEX_ADD",
	BasicRem:    "BASIC_REM",
	IndexRem:    "INDEX_REM",
	RemoveAll:   "REMOVEALL",
}

// CategoryName maps a category bit to its stable textual tag. Unknown
// values (including 0, meaning "no property") map to the empty string.
func CategoryName(c Category) string {
	return categoryNames[c]
}

// methodCategory returns the category bit for meth, based on its name and
// its facts. shortForm enables the suffix-specialized categories STRING_GET,
// MIN_GET, MAX_GET, GET_NUM and SET_NUM; with shortForm false those collapse
// to the underlying BASIC/MULTI/INDEX/NTH variant. ENUM_SET and BOOL_ON/OFF
// are returned in either form.
func methodCategory(meth *methodFacts, shortForm bool) Category {
	name := meth.Name

	switch {
	case isSetMethod(name):
		switch {
		case meth.IsEnumerated:
			return EnumSet
		case meth.IsIndexed:
			if isSetNthMethod(name) {
				return NthSet
			}
			return IndexSet
		case meth.IsMultiValue:
			return MultiSet
		case shortForm && isSetNumberOfMethod(name):
			return SetNum
		default:
			return BasicSet
		}

	case meth.IsBoolean:
		if name[len(name)-1] == 'n' {
			return BoolOn
		}
		return BoolOff

	case isGetMethod(name):
		switch {
		case shortForm && isGetMinValueMethod(name):
			return MinGet
		case shortForm && isGetMaxValueMethod(name):
			return MaxGet
		case shortForm && isAsStringMethod(name):
			return StringGet
		case meth.IsIndexed && meth.Count > 0 && !meth.IsHinted:
			if isGetNthMethod(name) {
				return NthRHSGet
			}
			return IndexRHSGet
		case meth.IsIndexed:
			if isGetNthMethod(name) {
				return NthGet
			}
			return IndexGet
		case meth.IsMultiValue:
			return MultiGet
		case meth.Count > 0 && !meth.IsHinted:
			return RHSGet
		case shortForm && isGetNumberOfMethod(name):
			return GetNum
		default:
			return BasicGet
		}

	case isRemoveMethod(name):
		switch {
		case isRemoveAllMethod(name):
			return RemoveAll
		case meth.IsIndexed:
			return IndexRem
		default:
			return BasicRem
		}

	case isAddMethod(name):
		switch {
		case meth.IsIndexed:
			return IndexAdd
		case meth.IsMultiValue:
			return MultiAdd
		default:
			return BasicAdd
		}
	}

	return 0
}
