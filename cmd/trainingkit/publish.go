package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.lorenzomilicia.dev/training-kit/internal/uploader"
)

var (
	publishBucket   string
	publishRegion   string
	publishEndpoint string
	publishBaseURL  string
	publishPrefix   string
	publishForce    bool
	publishDryRun   bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the content directory's YAML files to S3-compatible storage",
	Long: `Upload every YAML file under the content directory to S3-compatible storage
(AWS S3, Cloudflare R2, MinIO).

Credentials are read from environment variables (or the --env file):
  - S3_ACCESS_KEY_ID / AWS_ACCESS_KEY_ID
  - S3_SECRET_ACCESS_KEY / AWS_SECRET_ACCESS_KEY
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var ul uploader.Uploader
		if !publishDryRun {
			s3ul, err := uploader.NewS3Uploader(ctx, uploader.S3Config{
				Endpoint: publishEndpoint,
				Region:   publishRegion,
				Bucket:   publishBucket,
				BaseURL:  publishBaseURL,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize uploader: %w", err)
			}
			ul = s3ul
		}

		result, err := uploader.PublishDir(ctx, ul, contentDir, uploader.PublishOptions{
			Prefix: publishPrefix,
			Force:  publishForce,
			DryRun: publishDryRun,
		})
		if err != nil {
			return err
		}

		for key, ferr := range result.Failed {
			fmt.Printf("Failed %s: %v\n", key, ferr)
		}
		if publishDryRun {
			fmt.Printf("Would upload: %d files\n", len(result.Uploaded))
		} else {
			fmt.Printf("Uploaded: %d files, skipped: %d files\n", len(result.Uploaded), len(result.Skipped))
		}
		if len(result.Failed) > 0 {
			return fmt.Errorf("%d files failed to upload", len(result.Failed))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	f := publishCmd.Flags()
	f.StringVarP(&publishBucket, "bucket", "b", "", "S3 bucket name (required)")
	f.StringVarP(&publishRegion, "region", "r", "us-east-1", "S3 region ('auto' for R2)")
	f.StringVar(&publishEndpoint, "endpoint", "", "Custom S3 endpoint URL")
	f.StringVar(&publishBaseURL, "base-url", "", "Public base URL of published files")
	f.StringVar(&publishPrefix, "prefix", "training/", "Prefix prepended to all keys")
	f.BoolVar(&publishForce, "force", false, "Upload even if files already exist")
	f.BoolVar(&publishDryRun, "dry-run", false, "List files without uploading")

	publishCmd.MarkFlagRequired("bucket")
}
