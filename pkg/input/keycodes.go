package input

// Keycode is a platform key code, matching the Android KeyEvent constants.
type Keycode int32

// The subset of platform key codes the translator maps to toolkit keys.
const (
	KeycodeDpadUp    Keycode = 19
	KeycodeDpadDown  Keycode = 20
	KeycodeDpadLeft  Keycode = 21
	KeycodeDpadRight Keycode = 22

	KeycodeA Keycode = 29
	KeycodeB Keycode = 30
	KeycodeC Keycode = 31
	KeycodeD Keycode = 32
	KeycodeE Keycode = 33
	KeycodeF Keycode = 34
	KeycodeG Keycode = 35
	KeycodeH Keycode = 36
	KeycodeI Keycode = 37
	KeycodeJ Keycode = 38
	KeycodeK Keycode = 39
	KeycodeL Keycode = 40
	KeycodeM Keycode = 41
	KeycodeN Keycode = 42
	KeycodeO Keycode = 43
	KeycodeP Keycode = 44
	KeycodeQ Keycode = 45
	KeycodeR Keycode = 46
	KeycodeS Keycode = 47
	KeycodeT Keycode = 48
	KeycodeU Keycode = 49
	KeycodeV Keycode = 50
	KeycodeW Keycode = 51
	KeycodeX Keycode = 52
	KeycodeY Keycode = 53
	KeycodeZ Keycode = 54

	KeycodeTab        Keycode = 61
	KeycodeSpace      Keycode = 62
	KeycodeEnter      Keycode = 66
	KeycodeDel        Keycode = 67
	KeycodePageUp     Keycode = 92
	KeycodePageDown   Keycode = 93
	KeycodeEscape     Keycode = 111
	KeycodeForwardDel Keycode = 112
	KeycodeMoveHome   Keycode = 122
	KeycodeMoveEnd    Keycode = 123

	KeycodeF1  Keycode = 131
	KeycodeF2  Keycode = 132
	KeycodeF3  Keycode = 133
	KeycodeF4  Keycode = 134
	KeycodeF5  Keycode = 135
	KeycodeF6  Keycode = 136
	KeycodeF7  Keycode = 137
	KeycodeF8  Keycode = 138
	KeycodeF9  Keycode = 139
	KeycodeF10 Keycode = 140
	KeycodeF11 Keycode = 141
	KeycodeF12 Keycode = 142

	KeycodeNumpad0        Keycode = 144
	KeycodeNumpad1        Keycode = 145
	KeycodeNumpad2        Keycode = 146
	KeycodeNumpad3        Keycode = 147
	KeycodeNumpad4        Keycode = 148
	KeycodeNumpad5        Keycode = 149
	KeycodeNumpad6        Keycode = 150
	KeycodeNumpad7        Keycode = 151
	KeycodeNumpad8        Keycode = 152
	KeycodeNumpad9        Keycode = 153
	KeycodeNumpadSubtract Keycode = 156
	KeycodeNumpadEquals   Keycode = 161

	KeycodeCut   Keycode = 277
	KeycodeCopy  Keycode = 278
	KeycodePaste Keycode = 279
)

// Key is a toolkit-native logical key.
type Key int

// Toolkit keys.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyTab
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyMinus
	KeyEquals
)

var physicalKeyMap = map[Keycode]Key{
	KeycodeA: KeyA, KeycodeB: KeyB, KeycodeC: KeyC, KeycodeD: KeyD,
	KeycodeE: KeyE, KeycodeF: KeyF, KeycodeG: KeyG, KeycodeH: KeyH,
	KeycodeI: KeyI, KeycodeJ: KeyJ, KeycodeK: KeyK, KeycodeL: KeyL,
	KeycodeM: KeyM, KeycodeN: KeyN, KeycodeO: KeyO, KeycodeP: KeyP,
	KeycodeQ: KeyQ, KeycodeR: KeyR, KeycodeS: KeyS, KeycodeT: KeyT,
	KeycodeU: KeyU, KeycodeV: KeyV, KeycodeW: KeyW, KeycodeX: KeyX,
	KeycodeY: KeyY, KeycodeZ: KeyZ,

	KeycodeF1: KeyF1, KeycodeF2: KeyF2, KeycodeF3: KeyF3, KeycodeF4: KeyF4,
	KeycodeF5: KeyF5, KeycodeF6: KeyF6, KeycodeF7: KeyF7, KeycodeF8: KeyF8,
	KeycodeF9: KeyF9, KeycodeF10: KeyF10, KeycodeF11: KeyF11, KeycodeF12: KeyF12,

	KeycodeTab:        KeyTab,
	KeycodeSpace:      KeySpace,
	KeycodeEnter:      KeyEnter,
	KeycodeEscape:     KeyEscape,
	KeycodeDel:        KeyBackspace,
	KeycodeForwardDel: KeyDelete,
	KeycodePageUp:     KeyPageUp,
	KeycodePageDown:   KeyPageDown,
	KeycodeMoveHome:   KeyHome,
	KeycodeMoveEnd:    KeyEnd,

	KeycodeDpadUp:    KeyArrowUp,
	KeycodeDpadDown:  KeyArrowDown,
	KeycodeDpadLeft:  KeyArrowLeft,
	KeycodeDpadRight: KeyArrowRight,

	KeycodeNumpad0: KeyNum0, KeycodeNumpad1: KeyNum1, KeycodeNumpad2: KeyNum2,
	KeycodeNumpad3: KeyNum3, KeycodeNumpad4: KeyNum4, KeycodeNumpad5: KeyNum5,
	KeycodeNumpad6: KeyNum6, KeycodeNumpad7: KeyNum7, KeycodeNumpad8: KeyNum8,
	KeycodeNumpad9: KeyNum9,
	KeycodeNumpadSubtract: KeyMinus,
	KeycodeNumpadEquals:   KeyEquals,
}

// ToPhysicalKey maps a platform key code to a toolkit key.
// Returns KeyUnknown, false for codes without a mapping.
func ToPhysicalKey(code Keycode) (Key, bool) {
	key, ok := physicalKeyMap[code]
	return key, ok
}
