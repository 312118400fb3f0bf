package token

var keywords = map[string]Kind{
	"pragma":      KwPragma,
	"import":      KwImport,
	"using":       KwUsing,
	"contract":    KwContract,
	"interface":   KwInterface,
	"library":     KwLibrary,
	"abstract":    KwAbstract,
	"function":    KwFunction,
	"constructor": KwConstructor,
	"fallback":    KwFallback,
	"receive":     KwReceive,
	"modifier":    KwModifier,
	"struct":      KwStruct,
	"enum":        KwEnum,
	"event":       KwEvent,
	"error":       KwError,
	"mapping":     KwMapping,
	"is":          KwIs,
	"returns":     KwReturns,
	"public":      KwPublic,
	"private":     KwPrivate,
	"internal":    KwInternal,
	"external":    KwExternal,
	"constant":    KwConstant,
	"immutable":   KwImmutable,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
