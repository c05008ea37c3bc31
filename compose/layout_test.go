package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"short sentence stays on one line", "kalp bilir", []string{"kalp bilir"}},
		{"breaks before the overflowing word", "bazen susmak en yüksek sesli cevaptır", []string{"bazen susmak en", "yüksek sesli", "cevaptır"}},
		{"oversized word gets its own line", "ab gerçeklikkaybolmazsadece yer", []string{"ab", "gerçeklikkaybolmazsadece", "yer"}},
		{"empty input", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, 18))
		})
	}
}

func TestWrapTextCountsRunesNotBytes(t *testing.T) {
	// 18 runes of Turkish text, well past 18 bytes.
	lines := wrapText("şöhret çöğüş ırmak", 18)
	assert.Equal(t, []string{"şöhret çöğüş ırmak"}, lines)
}

func TestEscapeDrawtext(t *testing.T) {
	assert.Equal(t, `\%100 de\:ğil\, \'asla\'`, escapeDrawtext(`%100 de:ğil, 'asla'`))
	assert.Equal(t, `\\n`, escapeDrawtext(`\n`))
	assert.Equal(t, "düz metin", escapeDrawtext("düz metin"))
}
