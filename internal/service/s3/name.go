package s3

import "github.com/google/uuid"

// bucketNameMaxLen はバケット名の上限（プロバイダ制約: 3〜63文字）
const bucketNameMaxLen = 63

// CreateBucketName はプレフィックスにランダムなUUIDを連結して
// 衝突しにくいバケット名を生成する
// プレフィックスが長い場合はUUID全体が残るように先にプレフィックスを切り詰める
// （末尾を切るとランダム部分が失われ、連続呼び出しで同名になってしまう）
func CreateBucketName(prefix string) string {
	suffix := uuid.NewString()
	if limit := bucketNameMaxLen - len(suffix); len(prefix) > limit {
		prefix = prefix[:limit]
	}
	return prefix + suffix
}
