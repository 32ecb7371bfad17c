package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_PlainTextPassesThrough(t *testing.T) {
	resume := "Senior developer with expertise in Java.\n\n8 years of experience in enterprise applications."

	// Newlines in plain resumes must survive untouched.
	assert.Equal(t, resume, Clean(resume))
}

func TestClean_TrimsPlainText(t *testing.T) {
	assert.Equal(t, "Go engineer", Clean("  Go engineer \n"))
}

func TestClean_ExtractsBlockText(t *testing.T) {
	html := "<div><h1>Maria Garcia</h1><p>Senior developer with expertise in Java.</p><li>Spring Boot</li></div>"

	got := Clean(html)
	assert.Contains(t, got, "Maria Garcia")
	assert.Contains(t, got, "Senior developer with expertise in Java.")
	assert.Contains(t, got, "Spring Boot")
	assert.NotContains(t, got, "<")
}

func TestClean_DropsScriptsAndStyles(t *testing.T) {
	html := "<p>Visible text</p><script>alert('x')</script><style>p{color:red}</style>"

	got := Clean(html)
	assert.Equal(t, "Visible text", got)
}

func TestClean_BareMarkupFallsBackToBodyText(t *testing.T) {
	html := "<div>Python developer based in China</div>"

	assert.Equal(t, "Python developer based in China", Clean(html))
}

func TestClean_AngleBracketsInProseAreNotMarkup(t *testing.T) {
	text := "Worked with latency < 10ms and throughput > 1k rps"

	assert.Equal(t, text, Clean(text))
}
