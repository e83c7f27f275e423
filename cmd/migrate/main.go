package main

import (
	"context"
	"time"

	"streamtube/pkg/config"
	"streamtube/pkg/logger"
	"streamtube/pkg/surreal"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// schema defines tables, fields and the unique indexes the toggle and
// registration paths rely on. DEFINE statements are idempotent with
// OVERWRITE, so reruns are safe.
const schema = `
DEFINE TABLE OVERWRITE user SCHEMALESS;
DEFINE FIELD OVERWRITE username ON user TYPE string;
DEFINE FIELD OVERWRITE email ON user TYPE string;
DEFINE FIELD OVERWRITE watch_history ON user TYPE array<record<video>> DEFAULT [];
DEFINE INDEX OVERWRITE user_username ON user FIELDS username UNIQUE;
DEFINE INDEX OVERWRITE user_email ON user FIELDS email UNIQUE;

DEFINE TABLE OVERWRITE video SCHEMALESS;
DEFINE FIELD OVERWRITE owner ON video TYPE record<user>;
DEFINE FIELD OVERWRITE views ON video TYPE int DEFAULT 0;
DEFINE FIELD OVERWRITE is_published ON video TYPE bool DEFAULT true;
DEFINE INDEX OVERWRITE video_owner ON video FIELDS owner;

DEFINE TABLE OVERWRITE comment SCHEMALESS;
DEFINE FIELD OVERWRITE video ON comment TYPE record<video>;
DEFINE FIELD OVERWRITE owner ON comment TYPE record<user>;
DEFINE INDEX OVERWRITE comment_video ON comment FIELDS video;

DEFINE TABLE OVERWRITE like SCHEMALESS;
DEFINE FIELD OVERWRITE liked_by ON like TYPE record<user>;
DEFINE FIELD OVERWRITE video ON like TYPE option<record<video>>;
DEFINE FIELD OVERWRITE comment ON like TYPE option<record<comment>>;
DEFINE FIELD OVERWRITE tweet ON like TYPE option<record<tweet>>;
DEFINE INDEX OVERWRITE like_video ON like FIELDS liked_by, video UNIQUE;
DEFINE INDEX OVERWRITE like_comment ON like FIELDS liked_by, comment UNIQUE;
DEFINE INDEX OVERWRITE like_tweet ON like FIELDS liked_by, tweet UNIQUE;

DEFINE TABLE OVERWRITE subscription SCHEMALESS;
DEFINE FIELD OVERWRITE subscriber ON subscription TYPE record<user>;
DEFINE FIELD OVERWRITE channel ON subscription TYPE record<user>;
DEFINE INDEX OVERWRITE subscription_pair ON subscription FIELDS subscriber, channel UNIQUE;
DEFINE INDEX OVERWRITE subscription_channel ON subscription FIELDS channel;

DEFINE TABLE OVERWRITE playlist SCHEMALESS;
DEFINE FIELD OVERWRITE owner ON playlist TYPE record<user>;
DEFINE FIELD OVERWRITE is_private ON playlist TYPE bool DEFAULT false;
DEFINE FIELD OVERWRITE videos ON playlist TYPE array<record<video>> DEFAULT [];

DEFINE TABLE OVERWRITE tweet SCHEMALESS;
DEFINE FIELD OVERWRITE owner ON tweet TYPE record<user>;
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := surreal.Connect(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to store: %v", err)
		panic(err)
	}
	defer db.Close(ctx)

	if _, err := surrealdb.Query[any](ctx, db, schema, nil); err != nil {
		log.Error("failed to apply schema: %v", err)
		panic(err)
	}

	log.Info("schema applied successfully")
}
