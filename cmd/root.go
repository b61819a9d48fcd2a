package cmd

import (
	"errors"
	"fmt"
	"os"

	awsclient "awssetup/internal/aws"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// AppName はコマンド名
const AppName = "awssetup"

var (
	region  string
	profile string
	iamPath string
	verbose bool

	logger = logrus.New()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "AWS環境セットアップツール",
	Long: `IAMロール・EC2インスタンス・S3バケットをまとめてセットアップするためのツールです。
ロールとポリシーの作成、インスタンスプロファイルの割り当て、
キーペアの作り直しを伴うインスタンス起動、バケットの作成・ポリシー管理に対応しています。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "ap-northeast-1", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVar(&iamPath, "path", "setup", "IAMロール/プロファイルのパスプレフィックス")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力")

	// コマンド実行前に共通でプロファイルチェックとログ設定を行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプコマンドの場合はスキップ
		if cmd.Name() == "help" {
			return nil
		}
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		return checkAndSetProfile(cmd)
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// プロファイルが見つからない場合はエラー
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	// 環境変数からプロファイルを設定
	profile = envProfile
	// versionコマンド以外の場合のみメッセージを表示
	if cmd.Name() != "version" {
		cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	}
	return nil
}

// getAwsContext は現在のフラグ値からAWSコンテキストを組み立てる
func getAwsContext() awsclient.Context {
	return awsclient.Context{
		Profile: profile,
		Region:  region,
		Path:    iamPath,
	}
}

// newAwsClients はAWS設定を読み込んでクライアント群を作成する
func newAwsClients() (*awsclient.Clients, error) {
	clients, err := awsclient.NewAwsClients(getAwsContext())
	if err != nil {
		return nil, fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
	}
	return clients, nil
}
