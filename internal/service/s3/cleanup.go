package s3

import (
	"context"
	"fmt"
	"sync"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BucketsByFilter はフィルターに一致するバケット名の一覧を取得します
func (b *BucketManager) BucketsByFilter(ctx context.Context, pattern string) ([]string, error) {
	names, err := b.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3バケット一覧取得エラー: %w", err)
	}

	foundBuckets := []string{}
	for _, name := range names {
		if common.MatchesFilter(name, pattern) {
			foundBuckets = append(foundBuckets, name)
			fmt.Printf("%s 検出されたS3バケット: %s\n", common.SearchIcon, name)
		}
	}

	return foundBuckets, nil
}

// CleanupBuckets は指定したS3バケット一覧を空にしてから削除します
func (b *BucketManager) CleanupBuckets(ctx context.Context, bucketNames []string) common.CleanupResult {
	if len(bucketNames) == 0 {
		return common.CleanupResult{ResourceType: "S3バケット", Deleted: []string{}, Failed: []string{}}
	}

	// 並列実行数を設定（最大10並列）
	maxWorkers := 10
	if len(bucketNames) < maxWorkers {
		maxWorkers = len(bucketNames)
	}

	executor := common.NewParallelExecutor(maxWorkers)
	results := make([]common.ProcessResult, len(bucketNames))
	resultsMutex := &sync.Mutex{}

	fmt.Printf("🚀 %d個のバケットを最大%d並列で削除します...\n\n", len(bucketNames), maxWorkers)

	for i, bucket := range bucketNames {
		idx := i
		bucketName := bucket
		executor.Execute(func() {
			fmt.Printf("バケット %s を空にして削除中...\n", bucketName)

			// バケットを空にする (バージョン管理対応)
			err := b.emptyBucket(ctx, bucketName)
			if err != nil {
				fmt.Printf("%s バケット %s を空にするのに失敗しました: %v\n", common.ErrorIcon, bucketName, err)
				resultsMutex.Lock()
				results[idx] = common.ProcessResult{Item: bucketName, Success: false, Error: err}
				resultsMutex.Unlock()
				return
			}

			err = b.DeleteBucket(ctx, bucketName)

			resultsMutex.Lock()
			if err != nil {
				fmt.Printf("%s バケット %s の削除に失敗しました: %v\n", common.ErrorIcon, bucketName, err)
				results[idx] = common.ProcessResult{Item: bucketName, Success: false, Error: err}
			} else {
				fmt.Printf("%s バケット %s を削除しました\n", common.SuccessIcon, bucketName)
				results[idx] = common.ProcessResult{Item: bucketName, Success: true}
			}
			resultsMutex.Unlock()
		})
	}

	executor.Wait()

	// 結果の集計
	successCount, failCount := common.CollectResults(results)
	fmt.Printf("\n%s 削除完了: 成功 %d個, 失敗 %d個\n", common.SuccessIcon, successCount, failCount)

	return common.CollectCleanupResult("S3バケット", results)
}

// emptyBucket は指定したS3バケットの中身をすべて削除します (バージョン管理対応)
func (b *BucketManager) emptyBucket(ctx context.Context, bucketName string) error {
	// ページネーション対応のループ
	var keyMarker *string
	var versionIdMarker *string

	for {
		// バケット内のオブジェクトとバージョンをリスト
		listVersionsInput := &awss3.ListObjectVersionsInput{
			Bucket: aws.String(bucketName),
		}
		if keyMarker != nil {
			listVersionsInput.KeyMarker = keyMarker
			listVersionsInput.VersionIdMarker = versionIdMarker
		}

		listVersionsOutput, err := b.api.ListObjectVersions(ctx, listVersionsInput)
		if err != nil {
			return fmt.Errorf("バケット内のオブジェクトバージョン一覧取得エラー: %w", err)
		}

		// 削除対象のオブジェクトと削除マーカーのリストを作成
		deleteObjects := []s3types.ObjectIdentifier{}
		for _, version := range listVersionsOutput.Versions {
			deleteObjects = append(deleteObjects, s3types.ObjectIdentifier{
				Key:       version.Key,
				VersionId: version.VersionId,
			})
		}
		for _, marker := range listVersionsOutput.DeleteMarkers {
			deleteObjects = append(deleteObjects, s3types.ObjectIdentifier{
				Key:       marker.Key,
				VersionId: marker.VersionId,
			})
		}

		// 削除対象がある場合は一括削除 (最大1000個ずつ)
		if len(deleteObjects) > 0 {
			chunkSize := 1000
			for i := 0; i < len(deleteObjects); i += chunkSize {
				end := i + chunkSize
				if end > len(deleteObjects) {
					end = len(deleteObjects)
				}
				batch := deleteObjects[i:end]

				fmt.Printf("  %d件のオブジェクトを削除中...\n", len(batch))
				deleteOutput, err := b.api.DeleteObjects(ctx, &awss3.DeleteObjectsInput{
					Bucket: aws.String(bucketName),
					Delete: &s3types.Delete{
						Objects: batch,
						Quiet:   aws.Bool(false),
					},
				})
				if err != nil {
					return fmt.Errorf("オブジェクトの一括削除エラー: %w", err)
				}

				// 削除エラーがあった場合は警告を表示
				for _, deleteErr := range deleteOutput.Errors {
					fmt.Printf("  %s  オブジェクト削除エラー: %s (バージョンID: %s) - %s\n",
						common.WarningIcon,
						aws.ToString(deleteErr.Key),
						aws.ToString(deleteErr.VersionId),
						aws.ToString(deleteErr.Message))
				}
			}
		}

		// 次のページがない場合は終了
		if !aws.ToBool(listVersionsOutput.IsTruncated) {
			break
		}

		// 次のページのマーカーを設定
		keyMarker = listVersionsOutput.NextKeyMarker
		versionIdMarker = listVersionsOutput.NextVersionIdMarker
	}

	fmt.Println("  バケットを空にしました。")
	return nil
}
