package utils

//run redis (optional, DDR_STORE_BACKEND=redis)
//docker run -p 6379:6379 -d redis

//run minio (optional, DDR_ARTIFACTS_BACKEND=s3)
//docker run -p 9000:9000 -d minio/minio server /data

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
