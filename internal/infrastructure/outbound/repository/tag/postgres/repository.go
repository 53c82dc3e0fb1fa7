package tag_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pinstack-tag-service/internal/custom_errors"
	model "pinstack-tag-service/internal/domain/models"
	ports "pinstack-tag-service/internal/domain/ports/output"
	"pinstack-tag-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// internalTagQuery is the canonical tag projection: one row per tag with its
// class, owner and the aggregated child tags of the inheritance graph.
const internalTagQuery = `
	SELECT
		tags.tag,
		tag_classes.class,
		tags.deprecated,
		array_remove(array_agg(child.tag ORDER BY child.tag), NULL),
		users.user_id,
		tags.description
	FROM tags
		INNER JOIN tag_classes
			ON tag_classes.class_id = tags.class_id
		LEFT JOIN tag_inheritance
			ON tag_inheritance.parent = tags.tag_id
		LEFT JOIN tags AS child
			ON child.tag_id = tag_inheritance.child
		LEFT JOIN users
			ON users.user_id = tags.owner`

const internalTagGroupBy = `
	GROUP BY tags.tag_id, tag_classes.class_id, users.user_id`

type TagRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewTagRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *TagRepository {
	return &TagRepository{db: db, log: log, metrics: metrics}
}

func (t *TagRepository) AddTags(ctx context.Context, postID int64, userID int64, tags []string) error {
	start := time.Now()
	t.log.Debug("Adding tags to post", slog.Int64("post_id", postID), slog.Int64("user_id", userID), slog.Int("tags_count", len(tags)))

	query := `CALL add_tags(@post_id, @user_id, @tags)`
	args := pgx.NamedArgs{
		"post_id": postID,
		"user_id": userID,
		"tags":    tags,
	}

	_, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_add", false)
		t.metrics.RecordDatabaseQueryDuration("tag_add", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			t.log.Debug("Post not found during AddTags", slog.Int64("post_id", postID))
			return custom_errors.ErrPostNotFound
		}
		t.log.Error("Error adding tags to post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_add", true)
	t.metrics.RecordDatabaseQueryDuration("tag_add", time.Since(start))
	t.log.Debug("Successfully added tags to post", slog.Int64("post_id", postID), slog.Int("tags_count", len(tags)))
	return nil
}

func (t *TagRepository) RemoveTags(ctx context.Context, postID int64, userID int64, tags []string) error {
	start := time.Now()
	t.log.Debug("Removing tags from post", slog.Int64("post_id", postID), slog.Int64("user_id", userID), slog.Int("tags_count", len(tags)))

	query := `CALL remove_tags(@post_id, @user_id, @tags)`
	args := pgx.NamedArgs{
		"post_id": postID,
		"user_id": userID,
		"tags":    tags,
	}

	_, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_remove", false)
		t.metrics.RecordDatabaseQueryDuration("tag_remove", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			t.log.Debug("Post not found during RemoveTags", slog.Int64("post_id", postID))
			return custom_errors.ErrPostNotFound
		}
		t.log.Error("Error removing tags from post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_remove", true)
	t.metrics.RecordDatabaseQueryDuration("tag_remove", time.Since(start))
	t.log.Debug("Successfully removed tags from post", slog.Int64("post_id", postID), slog.Int("tags_count", len(tags)))
	return nil
}

func (t *TagRepository) InheritTag(ctx context.Context, userID int64, parent string, child string, deprecate bool) error {
	start := time.Now()
	t.log.Debug("Creating tag inheritance", slog.String("parent", parent), slog.String("child", child), slog.Bool("deprecate", deprecate))

	query := `CALL inherit_tag(@user_id, @parent, @child, @deprecate)`
	args := pgx.NamedArgs{
		"user_id":   userID,
		"parent":    parent,
		"child":     child,
		"deprecate": deprecate,
	}

	_, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_inherit", false)
		t.metrics.RecordDatabaseQueryDuration("tag_inherit", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				t.log.Debug("Inheritance already exists", slog.String("parent", parent), slog.String("child", child))
				return custom_errors.ErrDuplicateInheritance
			case "23514":
				t.log.Debug("Inheritance would create a cycle", slog.String("parent", parent), slog.String("child", child))
				return custom_errors.ErrInheritanceCycle
			}
		}
		t.log.Error("Error creating tag inheritance", slog.String("parent", parent), slog.String("child", child), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_inherit", true)
	t.metrics.RecordDatabaseQueryDuration("tag_inherit", time.Since(start))
	t.log.Debug("Successfully created tag inheritance", slog.String("parent", parent), slog.String("child", child))
	return nil
}

func (t *TagRepository) RemoveInheritance(ctx context.Context, parent string, child string) error {
	start := time.Now()
	t.log.Debug("Removing tag inheritance", slog.String("parent", parent), slog.String("child", child))

	query := `
		DELETE FROM tag_inheritance
		USING tags AS t1, tags AS t2
		WHERE tag_inheritance.parent = t1.tag_id
			AND t1.tag = @parent
			AND tag_inheritance.child = t2.tag_id
			AND t2.tag = @child`
	args := pgx.NamedArgs{
		"parent": parent,
		"child":  child,
	}

	result, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_inheritance_delete", false)
		t.metrics.RecordDatabaseQueryDuration("tag_inheritance_delete", time.Since(start))
		t.log.Error("Error removing tag inheritance", slog.String("parent", parent), slog.String("child", child), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_inheritance_delete", true)
	t.metrics.RecordDatabaseQueryDuration("tag_inheritance_delete", time.Since(start))
	if result.RowsAffected() == 0 {
		t.log.Debug("Inheritance edge was already absent", slog.String("parent", parent), slog.String("child", child))
	} else {
		t.log.Debug("Successfully removed tag inheritance", slog.String("parent", parent), slog.String("child", child))
	}
	return nil
}

func (t *TagRepository) UpdateTag(ctx context.Context, name string, patch *model.TagPatch) error {
	start := time.Now()
	t.log.Debug("Updating tag", slog.String("tag", name), slog.Any("update_fields", map[string]bool{
		"name":        patch.Name != nil,
		"group":       patch.Group != nil,
		"owner":       patch.OwnerID != nil,
		"description": patch.Description != nil,
		"deprecated":  patch.Deprecated != nil,
	}))

	setClauses := []string{}
	args := pgx.NamedArgs{"tag_name": name}

	if patch.Group != nil {
		setClauses = append(setClauses, "class_id = tag_class_to_id(@group)")
		args["group"] = *patch.Group
	}
	if patch.Name != nil {
		setClauses = append(setClauses, "tag = @new_name")
		args["new_name"] = *patch.Name
	}
	if patch.OwnerID != nil {
		setClauses = append(setClauses, "owner = @owner_id")
		args["owner_id"] = *patch.OwnerID
	}
	if patch.Description != nil {
		setClauses = append(setClauses, "description = @description")
		args["description"] = *patch.Description
	}
	if patch.Deprecated != nil {
		setClauses = append(setClauses, "deprecated = @deprecated")
		args["deprecated"] = *patch.Deprecated
	}

	if len(setClauses) == 0 {
		t.log.Debug("No fields to update", slog.String("tag", name))
		return custom_errors.ErrNoUpdateParameters
	}

	query := "UPDATE tags SET " + strings.Join(setClauses, ", ") + " WHERE tags.tag = @tag_name"

	result, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_update", false)
		t.metrics.RecordDatabaseQueryDuration("tag_update", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				t.log.Debug("Tag name already taken", slog.String("tag", name))
				return custom_errors.ErrTagAlreadyExists
			case "23502":
				t.log.Debug("Unknown tag group in update", slog.String("tag", name))
				return custom_errors.ErrUnknownTagGroup
			}
		}
		t.log.Error("Error updating tag", slog.String("tag", name), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		t.metrics.IncrementDatabaseQueries("tag_update", false)
		t.metrics.RecordDatabaseQueryDuration("tag_update", time.Since(start))
		t.log.Debug("Tag not found during update", slog.String("tag", name))
		return custom_errors.ErrTagNotFound
	}

	t.metrics.IncrementDatabaseQueries("tag_update", true)
	t.metrics.RecordDatabaseQueryDuration("tag_update", time.Since(start))
	t.log.Debug("Successfully updated tag", slog.String("tag", name))
	return nil
}

func (t *TagRepository) GetTag(ctx context.Context, name string) (*model.InternalTag, error) {
	start := time.Now()
	t.log.Debug("Getting tag by name", slog.String("tag", name))

	query := internalTagQuery + `
	WHERE tags.tag = @name` + internalTagGroupBy
	args := pgx.NamedArgs{"name": name}

	var tag model.InternalTag
	err := t.db.QueryRow(ctx, query, args).Scan(
		&tag.Name,
		&tag.Group,
		&tag.Deprecated,
		&tag.InheritedTags,
		&tag.OwnerID,
		&tag.Description,
	)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_by_name", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_name", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			t.log.Debug("Tag not found", slog.String("tag", name))
			return nil, custom_errors.ErrTagNotFound
		}
		t.log.Error("Error getting tag by name", slog.String("tag", name), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_get_by_name", true)
	t.metrics.RecordDatabaseQueryDuration("tag_get_by_name", time.Since(start))
	t.log.Debug("Successfully retrieved tag", slog.String("tag", tag.Name))
	return &tag, nil
}

func (t *TagRepository) GetPostTags(ctx context.Context, postID int64) (*model.PostTags, error) {
	start := time.Now()
	t.log.Debug("Getting tags by post", slog.Int64("post_id", postID))

	// A post without tags still yields one row with a NULL class, which is
	// how a known-but-untagged post is told apart from a missing one.
	query := `
		SELECT
			tag_classes.class,
			array_remove(array_agg(tags.tag ORDER BY tags.tag), NULL),
			privacies.privacy,
			posts.uploader
		FROM posts
			INNER JOIN privacies
				ON privacies.privacy_id = posts.privacy_id
			LEFT JOIN tag_post
				ON tag_post.post_id = posts.post_id
			LEFT JOIN tags
				ON tags.tag_id = tag_post.tag_id
					AND tags.deprecated = false
			LEFT JOIN tag_classes
				ON tag_classes.class_id = tags.class_id
		WHERE posts.post_id = @post_id
		GROUP BY tag_classes.class_id, privacies.privacy, posts.uploader`
	args := pgx.NamedArgs{"post_id": postID}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_by_post", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_post", time.Since(start))
		t.log.Error("Error getting tags by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	postTags := &model.PostTags{Groups: model.TagGroups{}}
	found := false
	for rows.Next() {
		found = true
		var class *string
		var tags []string
		if err := rows.Scan(&class, &tags, &postTags.Privacy, &postTags.UserID); err != nil {
			t.metrics.IncrementDatabaseQueries("tag_get_by_post", false)
			t.metrics.RecordDatabaseQueryDuration("tag_get_by_post", time.Since(start))
			t.log.Error("Error scanning post tags row", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		if class == nil {
			continue
		}
		postTags.Groups[*class] = tags
	}
	if err = rows.Err(); err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_by_post", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_post", time.Since(start))
		t.log.Error("Error iterating rows during GetPostTags", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if !found {
		t.metrics.IncrementDatabaseQueries("tag_get_by_post", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_post", time.Since(start))
		t.log.Debug("Post not found during GetPostTags", slog.Int64("post_id", postID))
		return nil, custom_errors.ErrPostNotFound
	}

	t.metrics.IncrementDatabaseQueries("tag_get_by_post", true)
	t.metrics.RecordDatabaseQueryDuration("tag_get_by_post", time.Since(start))
	t.log.Debug("Successfully retrieved tags by post", slog.Int64("post_id", postID), slog.Int("groups_count", len(postTags.Groups)))
	return postTags, nil
}

func (t *TagRepository) GetUserTags(ctx context.Context, userID int64) ([]*model.InternalTag, error) {
	start := time.Now()
	t.log.Debug("Getting tags by owner", slog.Int64("user_id", userID))

	query := internalTagQuery + `
	WHERE users.user_id = @user_id` + internalTagGroupBy + `
	ORDER BY tags.tag`
	args := pgx.NamedArgs{"user_id": userID}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_by_user", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_user", time.Since(start))
		t.log.Error("Error getting tags by owner", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	tags, err := t.collectInternalTags(rows)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_by_user", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_by_user", time.Since(start))
		t.log.Error("Error collecting tags by owner", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	t.metrics.IncrementDatabaseQueries("tag_get_by_user", true)
	t.metrics.RecordDatabaseQueryDuration("tag_get_by_user", time.Since(start))
	t.log.Debug("Successfully retrieved tags by owner", slog.Int64("user_id", userID), slog.Int("tags_count", len(tags)))
	return tags, nil
}

func (t *TagRepository) GetAllTags(ctx context.Context) ([]*model.InternalTag, error) {
	start := time.Now()
	t.log.Debug("Getting all tags")

	query := internalTagQuery + internalTagGroupBy + `
	ORDER BY tags.tag`

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_all", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_all", time.Since(start))
		t.log.Error("Error getting all tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	tags, err := t.collectInternalTags(rows)
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_get_all", false)
		t.metrics.RecordDatabaseQueryDuration("tag_get_all", time.Since(start))
		t.log.Error("Error collecting all tags", slog.String("error", err.Error()))
		return nil, err
	}

	t.metrics.IncrementDatabaseQueries("tag_get_all", true)
	t.metrics.RecordDatabaseQueryDuration("tag_get_all", time.Since(start))
	t.log.Debug("Successfully retrieved all tags", slog.Int("tags_count", len(tags)))
	return tags, nil
}

func (t *TagRepository) CountPublicPosts(ctx context.Context, tag string) (int64, error) {
	start := time.Now()
	t.log.Debug("Counting public posts for tag", slog.String("tag", tag))

	query := `
		SELECT COUNT(1)
		FROM tags
			INNER JOIN tag_post
				ON tags.tag_id = tag_post.tag_id
			INNER JOIN posts
				ON tag_post.post_id = posts.post_id
					AND posts.privacy_id = privacy_to_id('public')
		WHERE tags.tag = @tag
			AND tags.deprecated = false`
	args := pgx.NamedArgs{"tag": tag}

	var count int64
	if err := t.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		t.metrics.IncrementDatabaseQueries("tag_count_public", false)
		t.metrics.RecordDatabaseQueryDuration("tag_count_public", time.Since(start))
		t.log.Error("Error counting public posts for tag", slog.String("tag", tag), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	t.metrics.IncrementDatabaseQueries("tag_count_public", true)
	t.metrics.RecordDatabaseQueryDuration("tag_count_public", time.Since(start))
	t.log.Debug("Successfully counted public posts for tag", slog.String("tag", tag), slog.Int64("count", count))
	return count, nil
}

func (t *TagRepository) collectInternalTags(rows pgx.Rows) ([]*model.InternalTag, error) {
	var tags []*model.InternalTag
	for rows.Next() {
		var tag model.InternalTag
		if err := rows.Scan(
			&tag.Name,
			&tag.Group,
			&tag.Deprecated,
			&tag.InheritedTags,
			&tag.OwnerID,
			&tag.Description,
		); err != nil {
			return nil, custom_errors.ErrDatabaseScan
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, custom_errors.ErrDatabaseQuery
	}
	return tags, nil
}
