package rain

const (
	katakana = "ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ"
	latin    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%&"
)

// Alphabet is the fixed glyph set drawn by the rain: half-width katakana
// followed by Latin letters, digits and a few symbols.
var Alphabet = []rune(katakana + latin)
