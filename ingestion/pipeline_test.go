package ingestion

import (
	"context"
	"testing"

	"github.com/mediashelf/mediashelf/core"
	"github.com/mediashelf/mediashelf/storage"
	"github.com/mediashelf/mediashelf/storage/badger"
	"github.com/mediashelf/mediashelf/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (storage.MediaRepository, func()) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		backend.Close()
	}
	return repo, cleanup
}

func videoMessage(id int64, caption string) transport.Message {
	return transport.Message{
		ID:      id,
		Caption: caption,
		Video:   &transport.Attachment{FileID: "vid-file"},
	}
}

func TestHandleMessageStoresVideo(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	ctx := context.Background()
	msg := videoMessage(1042, "🎞️𝐓𝐢𝐭𝐥𝐞 » Intro to Graphs\n📚 Course : CS201\n🌟𝐄𝐱𝐭𝐫𝐚𝐜𝐭𝐞𝐝 𝐁𝐲 » alice")

	stored, err := pipeline.HandleMessage(ctx, msg)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, core.MediaKindVideo, stored.Kind)
	assert.Equal(t, "Intro to Graphs", stored.Title)
	assert.Equal(t, "CS201", stored.Course)
	assert.Equal(t, "alice", stored.ExtractedBy)
	assert.Equal(t, int64(1042), stored.OriginMessageID)
	assert.Equal(t, "vid-file", stored.PayloadRef)
	assert.NotZero(t, stored.Id)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestHandleMessageStoresDocument(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	msg := transport.Message{
		ID:       7,
		Caption:  "📕𝐓𝐢𝐭𝐥𝐞 » Graph Notes",
		Document: &transport.Attachment{FileID: "doc-file"},
	}

	stored, err := pipeline.HandleMessage(context.Background(), msg)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, core.MediaKindPDF, stored.Kind)
	assert.Equal(t, "doc-file", stored.PayloadRef)
}

func TestHandleMessageNormalizesUnknown(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	// No course or attribution line in the caption.
	stored, err := pipeline.HandleMessage(context.Background(), videoMessage(8, "🎞️𝐓𝐢𝐭𝐥𝐞 » Orphan Lecture"))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, core.UnknownLabel, stored.Course)
	assert.Equal(t, core.UnknownLabel, stored.ExtractedBy)
}

func TestHandleMessageIgnoresNonMedia(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	ctx := context.Background()

	// No attachment at all: ignored even with a valid caption.
	stored, err := pipeline.HandleMessage(ctx, transport.Message{ID: 1, Caption: "🎞️𝐓𝐢𝐭𝐥𝐞 » Lecture"})
	require.NoError(t, err)
	assert.Nil(t, stored)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHandleMessageIgnoresCaptionWithoutTitle(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	ctx := context.Background()

	// Course line alone doesn't gate a record; neither does an empty caption.
	stored, err := pipeline.HandleMessage(ctx, videoMessage(2, "📚 Course : CS201"))
	require.NoError(t, err)
	assert.Nil(t, stored)

	stored, err = pipeline.HandleMessage(ctx, videoMessage(3, ""))
	require.NoError(t, err)
	assert.Nil(t, stored)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHandleMessageVideoPrecedence(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	// Hypothetical message carrying both payloads: video wins.
	msg := transport.Message{
		ID:       4,
		Caption:  "🎞️𝐓𝐢𝐭𝐥𝐞 » Lecture",
		Video:    &transport.Attachment{FileID: "vid"},
		Document: &transport.Attachment{FileID: "doc"},
	}

	stored, err := pipeline.HandleMessage(context.Background(), msg)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, core.MediaKindVideo, stored.Kind)
	assert.Equal(t, "vid", stored.PayloadRef)
}

func TestHandleMessageReprocessingCreatesSecondRecord(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	ctx := context.Background()
	msg := videoMessage(5, "🎞️𝐓𝐢𝐭𝐥𝐞 » Repeated Lecture")

	first, err := pipeline.HandleMessage(ctx, msg)
	require.NoError(t, err)
	second, err := pipeline.HandleMessage(ctx, msg)
	require.NoError(t, err)

	// Current behavior: no dedup key on the origin message.
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.Id, second.Id)

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRunConsumesStreamInOrder(t *testing.T) {
	repo, cleanup := setupTestRepository(t)
	defer cleanup()

	pipeline, err := NewPipeline(repo)
	require.NoError(t, err)

	messages := make(chan transport.Message, 3)
	messages <- videoMessage(1, "🎞️𝐓𝐢𝐭𝐥𝐞 » First")
	messages <- videoMessage(2, "plain caption, ignored")
	messages <- videoMessage(3, "🎞️𝐓𝐢𝐭𝐥𝐞 » Second")
	close(messages)

	require.NoError(t, pipeline.Run(context.Background(), messages))

	records, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Second", records[0].Title) // recency order
	assert.Equal(t, "First", records[1].Title)
}

func TestNewPipelineRequiresRepository(t *testing.T) {
	_, err := NewPipeline(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}
