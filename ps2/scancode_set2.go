package ps2

// Set2 is the secondary PS/2 scan-code set ("Set 2"), which corrects the
// two mistaken ASCII values present in Set1 (spec.md §9) and should be
// preferred when both sets are otherwise equivalent.

var Set2 = ScanCodeSet{
	{Code: 0x1, Name: "escape", State: Pressed, ASCII: 0},
	{Code: 0x2, Name: "1", State: Pressed, ASCII: '1'},
	{Code: 0x3, Name: "2", State: Pressed, ASCII: '2'},
	{Code: 0x4, Name: "3", State: Pressed, ASCII: '3'},
	{Code: 0x5, Name: "4", State: Pressed, ASCII: '4'},
	{Code: 0x6, Name: "5", State: Pressed, ASCII: '5'},
	{Code: 0x7, Name: "6", State: Pressed, ASCII: '6'},
	{Code: 0x8, Name: "7", State: Pressed, ASCII: '7'},
	{Code: 0x9, Name: "8", State: Pressed, ASCII: '8'},
	{Code: 0xa, Name: "9", State: Pressed, ASCII: '9'},
	{Code: 0xb, Name: "0 (zero)", State: Pressed, ASCII: '0'},
	{Code: 0xc, Name: "-", State: Pressed, ASCII: '-'},
	{Code: 0xd, Name: "=", State: Pressed, ASCII: '='},
	{Code: 0xe, Name: "backspace", State: Pressed, ASCII: 0},
	{Code: 0xf, Name: "tab", State: Pressed, ASCII: '\t'},
	{Code: 0x10, Name: "Q", State: Pressed, ASCII: 'q'},
	{Code: 0x11, Name: "W", State: Pressed, ASCII: 'w'},
	{Code: 0x12, Name: "E", State: Pressed, ASCII: 'e'},
	{Code: 0x13, Name: "R", State: Pressed, ASCII: 'r'},
	{Code: 0x14, Name: "T", State: Pressed, ASCII: 't'},
	{Code: 0x15, Name: "Y", State: Pressed, ASCII: 'y'},
	{Code: 0x16, Name: "U", State: Pressed, ASCII: 'u'},
	{Code: 0x17, Name: "I", State: Pressed, ASCII: 'i'},
	{Code: 0x18, Name: "O", State: Pressed, ASCII: 'o'},
	{Code: 0x19, Name: "P", State: Pressed, ASCII: 'p'},
	{Code: 0x1a, Name: "[", State: Pressed, ASCII: '['},
	{Code: 0x1b, Name: "]", State: Pressed, ASCII: ']'},
	{Code: 0x1c, Name: "enter", State: Pressed, ASCII: '\n'},
	{Code: 0x1d, Name: "left control", State: Pressed, ASCII: 0},
	{Code: 0x1e, Name: "A", State: Pressed, ASCII: 'a'},
	{Code: 0x1f, Name: "S", State: Pressed, ASCII: 's'},
	{Code: 0x20, Name: "D", State: Pressed, ASCII: 'd'},
	{Code: 0x21, Name: "F", State: Pressed, ASCII: 'f'},
	{Code: 0x22, Name: "G", State: Pressed, ASCII: 'g'},
	{Code: 0x23, Name: "H", State: Pressed, ASCII: 'h'},
	{Code: 0x24, Name: "J", State: Pressed, ASCII: 'j'},
	{Code: 0x25, Name: "K", State: Pressed, ASCII: 'k'},
	{Code: 0x26, Name: "L", State: Pressed, ASCII: 'l'},
	{Code: 0x27, Name: ";", State: Pressed, ASCII: ';'},
	{Code: 0x28, Name: "' (single quote)", State: Pressed, ASCII: '\''},
	{Code: 0x29, Name: "` (back tick)", State: Pressed, ASCII: '`'},
	{Code: 0x2a, Name: "left shift", State: Pressed, ASCII: 0},
	{Code: 0x2b, Name: "\\", State: Pressed, ASCII: '\\'},
	{Code: 0x2c, Name: "Z", State: Pressed, ASCII: 'z'},
	{Code: 0x2d, Name: "X", State: Pressed, ASCII: 'x'},
	{Code: 0x2e, Name: "C", State: Pressed, ASCII: 'c'},
	{Code: 0x2f, Name: "V", State: Pressed, ASCII: 'v'},
	{Code: 0x30, Name: "B", State: Pressed, ASCII: 'b'},
	{Code: 0x31, Name: "N", State: Pressed, ASCII: 'n'},
	{Code: 0x32, Name: "M", State: Pressed, ASCII: 'm'},
	{Code: 0x33, Name: ",", State: Pressed, ASCII: ','},
	{Code: 0x34, Name: ".", State: Pressed, ASCII: '.'},
	{Code: 0x35, Name: "/", State: Pressed, ASCII: '/'},
	{Code: 0x36, Name: "right shift", State: Pressed, ASCII: 0},
	{Code: 0x37, Name: "(keypad) *", State: Pressed, ASCII: '*'},
	{Code: 0x38, Name: "left alt", State: Pressed, ASCII: 0},
	{Code: 0x39, Name: "space", State: Pressed, ASCII: ' '},
	{Code: 0x3a, Name: "CapsLock", State: Pressed, ASCII: 0},
	{Code: 0x3b, Name: "F1", State: Pressed, ASCII: 0},
	{Code: 0x3c, Name: "F2", State: Pressed, ASCII: 0},
	{Code: 0x3d, Name: "F3", State: Pressed, ASCII: 0},
	{Code: 0x3e, Name: "F4", State: Pressed, ASCII: 0},
	{Code: 0x3f, Name: "F5", State: Pressed, ASCII: 0},
	{Code: 0x40, Name: "F6", State: Pressed, ASCII: 0},
	{Code: 0x41, Name: "F7", State: Pressed, ASCII: 0},
	{Code: 0x42, Name: "F8", State: Pressed, ASCII: 0},
	{Code: 0x43, Name: "F9", State: Pressed, ASCII: 0},
	{Code: 0x44, Name: "F10", State: Pressed, ASCII: 0},
	{Code: 0x45, Name: "NumberLock", State: Pressed, ASCII: 0},
	{Code: 0x46, Name: "ScrollLock", State: Pressed, ASCII: 0},
	{Code: 0x47, Name: "(keypad) 7", State: Pressed, ASCII: '7'},
	{Code: 0x48, Name: "(keypad) 8", State: Pressed, ASCII: '8'},
	{Code: 0x49, Name: "(keypad) 9", State: Pressed, ASCII: '9'},
	{Code: 0x4a, Name: "(keypad) -", State: Pressed, ASCII: '-'},
	{Code: 0x4b, Name: "(keypad) 4", State: Pressed, ASCII: '4'},
	{Code: 0x4c, Name: "(keypad) 5", State: Pressed, ASCII: '5'},
	{Code: 0x4d, Name: "(keypad) 6", State: Pressed, ASCII: '6'},
	{Code: 0x4e, Name: "(keypad) +", State: Pressed, ASCII: '+'},
	{Code: 0x4f, Name: "(keypad) 1", State: Pressed, ASCII: '1'},
	{Code: 0x50, Name: "(keypad) 2", State: Pressed, ASCII: '2'},
	{Code: 0x51, Name: "(keypad) 3", State: Pressed, ASCII: '3'},
	{Code: 0x52, Name: "(keypad) 0", State: Pressed, ASCII: '0'},
	{Code: 0x53, Name: "(keypad) .", State: Pressed, ASCII: '.'},
	{Code: 0x57, Name: "F11", State: Pressed, ASCII: 0},
	{Code: 0x58, Name: "F12", State: Pressed, ASCII: 0},
	{Code: 0x81, Name: "escape", State: Released, ASCII: 0},
	{Code: 0x82, Name: "1", State: Released, ASCII: '1'},
	{Code: 0x83, Name: "2", State: Released, ASCII: '2'},
	{Code: 0x84, Name: "3", State: Released, ASCII: '3'},
	{Code: 0x85, Name: "4", State: Released, ASCII: '4'},
	{Code: 0x86, Name: "5", State: Released, ASCII: '5'},
	{Code: 0x87, Name: "6", State: Released, ASCII: '6'},
	{Code: 0x88, Name: "7", State: Released, ASCII: '7'},
	{Code: 0x89, Name: "8", State: Released, ASCII: '8'},
	{Code: 0x8a, Name: "9", State: Released, ASCII: '9'},
	{Code: 0x8b, Name: "0 (zero)", State: Released, ASCII: '0'},
	{Code: 0x8c, Name: "-", State: Released, ASCII: '-'},
	{Code: 0x8d, Name: "=", State: Released, ASCII: '='},
	{Code: 0x8e, Name: "backspace", State: Released, ASCII: 0},
	{Code: 0x8f, Name: "tab", State: Released, ASCII: '\t'},
	{Code: 0x90, Name: "Q", State: Released, ASCII: 'q'},
	{Code: 0x91, Name: "W", State: Released, ASCII: 'w'},
	{Code: 0x92, Name: "E", State: Released, ASCII: 'e'},
	{Code: 0x93, Name: "R", State: Released, ASCII: 'r'},
	{Code: 0x94, Name: "T", State: Released, ASCII: 't'},
	{Code: 0x95, Name: "Y", State: Released, ASCII: 'y'},
	{Code: 0x96, Name: "U", State: Released, ASCII: 'u'},
	{Code: 0x97, Name: "I", State: Released, ASCII: 'i'},
	{Code: 0x98, Name: "O", State: Released, ASCII: 'o'},
	{Code: 0x99, Name: "P", State: Released, ASCII: 'p'},
	{Code: 0x9a, Name: "[", State: Released, ASCII: '['},
	{Code: 0x9b, Name: "]", State: Released, ASCII: ']'},
	{Code: 0x9c, Name: "enter", State: Released, ASCII: '\n'},
	{Code: 0x9d, Name: "left control", State: Released, ASCII: 0},
	{Code: 0x9e, Name: "A", State: Released, ASCII: 'a'},
	{Code: 0x9f, Name: "S", State: Released, ASCII: 's'},
	{Code: 0xa0, Name: "D", State: Released, ASCII: 'd'},
	{Code: 0xa1, Name: "F", State: Released, ASCII: 'f'},
	{Code: 0xa2, Name: "G", State: Released, ASCII: 'g'},
	{Code: 0xa3, Name: "H", State: Released, ASCII: 'h'},
	{Code: 0xa4, Name: "J", State: Released, ASCII: 'j'},
	{Code: 0xa5, Name: "K", State: Released, ASCII: 'k'},
	{Code: 0xa6, Name: "L", State: Released, ASCII: 'l'},
	{Code: 0xa7, Name: ";", State: Released, ASCII: ';'},
	{Code: 0xa8, Name: "' (single quote)", State: Released, ASCII: '\''},
	{Code: 0xa9, Name: "` (back tick)", State: Released, ASCII: '`'},
	{Code: 0xaa, Name: "left shift", State: Released, ASCII: 0},
	{Code: 0xab, Name: "\\", State: Released, ASCII: '\\'},
	{Code: 0xac, Name: "Z", State: Released, ASCII: 'z'},
	{Code: 0xad, Name: "X", State: Released, ASCII: 'x'},
	{Code: 0xae, Name: "C", State: Released, ASCII: 'c'},
	{Code: 0xaf, Name: "V", State: Released, ASCII: 'v'},
	{Code: 0xb0, Name: "B", State: Released, ASCII: 'b'},
	{Code: 0xb1, Name: "N", State: Released, ASCII: 'n'},
	{Code: 0xb2, Name: "M", State: Released, ASCII: 'm'},
	{Code: 0xb3, Name: ",", State: Released, ASCII: ','},
	{Code: 0xb4, Name: ".", State: Released, ASCII: '.'},
	{Code: 0xb5, Name: "/", State: Released, ASCII: '/'},
	{Code: 0xb6, Name: "right shift", State: Released, ASCII: 0},
	{Code: 0xb7, Name: "(keypad) *", State: Released, ASCII: '*'},
	{Code: 0xb8, Name: "left alt", State: Released, ASCII: 0},
	{Code: 0xb9, Name: "space", State: Released, ASCII: ' '},
	{Code: 0xba, Name: "CapsLock", State: Released, ASCII: 0},
	{Code: 0xbb, Name: "F1", State: Released, ASCII: 0},
	{Code: 0xbc, Name: "F2", State: Released, ASCII: 0},
	{Code: 0xbd, Name: "F3", State: Released, ASCII: 0},
	{Code: 0xbe, Name: "F4", State: Released, ASCII: 0},
	{Code: 0xbf, Name: "F5", State: Released, ASCII: 0},
	{Code: 0xc0, Name: "F6", State: Released, ASCII: 0},
	{Code: 0xc1, Name: "F7", State: Released, ASCII: 0},
	{Code: 0xc2, Name: "F8", State: Released, ASCII: 0},
	{Code: 0xc3, Name: "F9", State: Released, ASCII: 0},
	{Code: 0xc4, Name: "F10", State: Released, ASCII: 0},
	{Code: 0xc5, Name: "NumberLock", State: Released, ASCII: 0},
	{Code: 0xc6, Name: "ScrollLock", State: Released, ASCII: 0},
	{Code: 0xc7, Name: "(keypad) 7", State: Released, ASCII: '7'},
	{Code: 0xc8, Name: "(keypad) 8", State: Released, ASCII: '8'},
	{Code: 0xc9, Name: "(keypad) 9", State: Released, ASCII: '9'},
	{Code: 0xca, Name: "(keypad) -", State: Released, ASCII: '-'},
	{Code: 0xcb, Name: "(keypad) 4", State: Released, ASCII: '4'},
	{Code: 0xcc, Name: "(keypad) 5", State: Released, ASCII: '5'},
	{Code: 0xcd, Name: "(keypad) 6", State: Released, ASCII: '6'},
	{Code: 0xce, Name: "(keypad) +", State: Released, ASCII: '+'},
	{Code: 0xcf, Name: "(keypad) 1", State: Released, ASCII: '1'},
	{Code: 0xd0, Name: "(keypad) 2", State: Released, ASCII: '2'},
	{Code: 0xd1, Name: "(keypad) 3", State: Released, ASCII: '3'},
	{Code: 0xd2, Name: "(keypad) 0", State: Released, ASCII: '0'},
	{Code: 0xd3, Name: "(keypad) .", State: Released, ASCII: '.'},
	{Code: 0xd7, Name: "F11", State: Released, ASCII: 0},
	{Code: 0xd8, Name: "F12", State: Released, ASCII: 0},
	{Code: 0xe010, Name: "(multimedia) previous track", State: Pressed, ASCII: 0},
	{Code: 0xe019, Name: "(multimedia) next track", State: Pressed, ASCII: 0},
	{Code: 0xe01c, Name: "(keypad) enter", State: Pressed, ASCII: '\n'},
	{Code: 0xe01d, Name: "right control", State: Pressed, ASCII: 0},
	{Code: 0xe020, Name: "(multimedia) mute", State: Pressed, ASCII: 0},
	{Code: 0xe021, Name: "(multimedia) calculator", State: Pressed, ASCII: 0},
	{Code: 0xe022, Name: "(multimedia) play", State: Pressed, ASCII: 0},
	{Code: 0xe024, Name: "(multimedia) stop", State: Pressed, ASCII: 0},
	{Code: 0xe02e, Name: "(multimedia) volume down", State: Pressed, ASCII: 0},
	{Code: 0xe030, Name: "(multimedia) volume up", State: Pressed, ASCII: 0},
	{Code: 0xe032, Name: "(multimedia) WWW home", State: Pressed, ASCII: 0},
	{Code: 0xe035, Name: "(keypad) /", State: Pressed, ASCII: '/'},
	{Code: 0xe038, Name: "right alt (or altGr)", State: Pressed, ASCII: 0},
	{Code: 0xe047, Name: "home", State: Pressed, ASCII: 0},
	{Code: 0xe048, Name: "cursor up", State: Pressed, ASCII: 0},
	{Code: 0xe049, Name: "page up", State: Pressed, ASCII: 0},
	{Code: 0xe04b, Name: "cursor left", State: Pressed, ASCII: 0},
	{Code: 0xe04d, Name: "cursor right", State: Pressed, ASCII: 0},
	{Code: 0xe04f, Name: "end", State: Pressed, ASCII: 0},
	{Code: 0xe050, Name: "cursor down", State: Pressed, ASCII: 0},
	{Code: 0xe051, Name: "page down", State: Pressed, ASCII: 0},
	{Code: 0xe052, Name: "insert", State: Pressed, ASCII: 0},
	{Code: 0xe053, Name: "delete", State: Pressed, ASCII: 0},
	{Code: 0xe05b, Name: "left GUI", State: Pressed, ASCII: 0},
	{Code: 0xe05c, Name: "right GUI", State: Pressed, ASCII: 0},
	{Code: 0xe05d, Name: "\"apps\"", State: Pressed, ASCII: 0},
	{Code: 0xe05e, Name: "(ACPI) power", State: Pressed, ASCII: 0},
	{Code: 0xe05f, Name: "(ACPI) sleep", State: Pressed, ASCII: 0},
	{Code: 0xe063, Name: "(ACPI) wake", State: Pressed, ASCII: 0},
	{Code: 0xe065, Name: "(multimedia) WWW search", State: Pressed, ASCII: 0},
	{Code: 0xe066, Name: "(multimedia) WWW favorites", State: Pressed, ASCII: 0},
	{Code: 0xe067, Name: "(multimedia) WWW refresh", State: Pressed, ASCII: 0},
	{Code: 0xe068, Name: "(multimedia) WWW stop", State: Pressed, ASCII: 0},
	{Code: 0xe069, Name: "(multimedia) WWW forward", State: Pressed, ASCII: 0},
	{Code: 0xe06a, Name: "(multimedia) WWW back", State: Pressed, ASCII: 0},
	{Code: 0xe06b, Name: "(multimedia) my computer", State: Pressed, ASCII: 0},
	{Code: 0xe06c, Name: "(multimedia) email", State: Pressed, ASCII: 0},
	{Code: 0xe06d, Name: "(multimedia) media select", State: Pressed, ASCII: 0},
	{Code: 0xe090, Name: "(multimedia) previous track", State: Released, ASCII: 0},
	{Code: 0xe099, Name: "(multimedia) next track", State: Released, ASCII: 0},
	{Code: 0xe09c, Name: "(keypad) enter", State: Released, ASCII: '\n'},
	{Code: 0xe09d, Name: "right control", State: Released, ASCII: 0},
	{Code: 0xe0a0, Name: "(multimedia) mute", State: Released, ASCII: 0},
	{Code: 0xe0a1, Name: "(multimedia) calculator", State: Released, ASCII: 0},
	{Code: 0xe0a2, Name: "(multimedia) play", State: Released, ASCII: 0},
	{Code: 0xe0a4, Name: "(multimedia) stop", State: Released, ASCII: 0},
	{Code: 0xe0ae, Name: "(multimedia) volume down", State: Released, ASCII: 0},
	{Code: 0xe0b0, Name: "(multimedia) volume up", State: Released, ASCII: 0},
	{Code: 0xe0b2, Name: "(multimedia) WWW home", State: Released, ASCII: 0},
	{Code: 0xe0b5, Name: "(keypad) /", State: Released, ASCII: '/'},
	{Code: 0xe0b8, Name: "right alt (or altGr)", State: Released, ASCII: 0},
	{Code: 0xe0c7, Name: "home", State: Released, ASCII: 0},
	{Code: 0xe0c8, Name: "cursor up", State: Released, ASCII: 0},
	{Code: 0xe0c9, Name: "page up", State: Released, ASCII: 0},
	{Code: 0xe0cb, Name: "cursor left", State: Released, ASCII: 0},
	{Code: 0xe0cd, Name: "cursor right", State: Released, ASCII: 0},
	{Code: 0xe0cf, Name: "end", State: Released, ASCII: 0},
	{Code: 0xe0d0, Name: "cursor down", State: Released, ASCII: 0},
	{Code: 0xe0d1, Name: "page down", State: Released, ASCII: 0},
	{Code: 0xe0d2, Name: "insert", State: Released, ASCII: 0},
	{Code: 0xe0d3, Name: "delete", State: Released, ASCII: 0},
	{Code: 0xe0db, Name: "left GUI", State: Released, ASCII: 0},
	{Code: 0xe0dc, Name: "right GUI", State: Released, ASCII: 0},
	{Code: 0xe0dd, Name: "\"apps\"", State: Released, ASCII: 0},
	{Code: 0xe0de, Name: "(ACPI) power", State: Released, ASCII: 0},
	{Code: 0xe0df, Name: "(ACPI) sleep", State: Released, ASCII: 0},
	{Code: 0xe0e3, Name: "(ACPI) wake", State: Released, ASCII: 0},
	{Code: 0xe0e5, Name: "(multimedia) WWW search", State: Released, ASCII: 0},
	{Code: 0xe0e6, Name: "(multimedia) WWW favorites", State: Released, ASCII: 0},
	{Code: 0xe0e7, Name: "(multimedia) WWW refresh", State: Released, ASCII: 0},
	{Code: 0xe0e8, Name: "(multimedia) WWW stop", State: Released, ASCII: 0},
	{Code: 0xe0e9, Name: "(multimedia) WWW forward", State: Released, ASCII: 0},
	{Code: 0xe0ea, Name: "(multimedia) WWW back", State: Released, ASCII: 0},
	{Code: 0xe0eb, Name: "(multimedia) my computer", State: Released, ASCII: 0},
	{Code: 0xe0ec, Name: "(multimedia) email", State: Released, ASCII: 0},
	{Code: 0xe0ed, Name: "(multimedia) media select", State: Released, ASCII: 0},
	{Code: 0xe02ae037, Name: "print screen", State: Pressed, ASCII: 0},
	{Code: 0xe0b7e0aa, Name: "print screen", State: Released, ASCII: 0},
	{Code: 0xe11d45e19dc5, Name: "pause", State: Pressed, ASCII: 0},
}