package s3

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// CreateTempFile はcontentをsize回繰り返した内容のファイルを
// ランダムな6文字のプレフィックス付きで作成し、そのパスを返す
func CreateTempFile(size int, fileName, content string) (string, error) {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	randomFileName := token + fileName

	if err := os.WriteFile(randomFileName, []byte(strings.Repeat(content, size)), 0644); err != nil {
		return "", err
	}
	return randomFileName, nil
}
