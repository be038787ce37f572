package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHideBrackets(t *testing.T) {
	assert.Equal(t, "Шолом FAST L", HideBrackets("Шолом FAST (олива) L"))
	assert.Equal(t, "Плитоноска", HideBrackets("Плитоноска (койот) (Cordura)"))
	assert.Equal(t, "No brackets", HideBrackets("No brackets"))
	assert.Equal(t, "", HideBrackets("(only)"))
}

func TestUploadPath(t *testing.T) {
	assert.Equal(t, "productimage_sholom-fast/front.jpg", UploadPath("ProductImage", "Шолом FAST", "front.jpg"))
	assert.Equal(t, "pagedata_about/banner.png", UploadPath("pagedata", "About", "../../etc/banner.png"))
	assert.Equal(t, "brand_helikon-tex/logo.svg", UploadPath("brand", "Helikon-Tex", `C:\tmp\logo.svg`))
}
