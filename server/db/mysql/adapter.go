// Package mysql is a database adapter for MySQL.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/chatwire/chat/server/db/common"
	"github.com/chatwire/chat/server/store"
	store_adapter "github.com/chatwire/chat/server/store/adapter"
	t "github.com/chatwire/chat/server/store/types"
	ms "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// adapter holds MySQL connection data.
type adapter struct {
	db      *sqlx.DB
	dsn     string
	dbName  string
	version int

	// Single query timeout.
	sqlTimeout time.Duration
	// DB transaction timeout.
	txTimeout time.Duration
}

const (
	defaultDSN      = "root:@tcp(localhost:3306)/chat?parseTime=true&collation=utf8mb4_unicode_ci"
	defaultDatabase = "chat"

	adpVersion  = 100
	adapterName = "mysql"

	// If DB request timeout is specified,
	// we allocate txTimeoutMultiplier times more time for transactions.
	txTimeoutMultiplier = 1.5
)

type configType struct {
	// DB connection string, see https://github.com/go-sql-driver/mysql#dsn-data-source-name
	DSN string `json:"dsn,omitempty"`
	// Name of the database to create, must match the one in DSN.
	Database string `json:"database,omitempty"`

	// Connection pool settings.
	//
	// Maximum number of open connections to the database.
	MaxOpenConns int `json:"max_open_conns,omitempty"`
	// Maximum number of connections in the idle connection pool.
	MaxIdleConns int `json:"max_idle_conns,omitempty"`
	// Maximum amount of time a connection may be reused (in seconds).
	ConnMaxLifetime int `json:"conn_max_lifetime,omitempty"`

	// DB request timeout (in seconds).
	// If 0 (or negative), no timeout is applied.
	SqlTimeout int `json:"sql_timeout,omitempty"`
}

func (a *adapter) getContext() (context.Context, context.CancelFunc) {
	if a.sqlTimeout > 0 {
		return context.WithTimeout(context.Background(), a.sqlTimeout)
	}
	return context.Background(), nil
}

func (a *adapter) getContextForTx() (context.Context, context.CancelFunc) {
	if a.txTimeout > 0 {
		return context.WithTimeout(context.Background(), a.txTimeout)
	}
	return context.Background(), nil
}

// Open initializes database session
func (a *adapter) Open(jsonconfig json.RawMessage) error {
	if a.db != nil {
		return errors.New("mysql adapter is already connected")
	}

	if len(jsonconfig) < 2 {
		return errors.New("adapter mysql missing config")
	}

	var err error
	var config configType
	if err = json.Unmarshal(jsonconfig, &config); err != nil {
		return errors.New("mysql adapter failed to parse config: " + err.Error())
	}

	a.dsn = config.DSN
	a.dbName = config.Database
	if a.dsn == "" {
		a.dsn = defaultDSN
	}
	if a.dbName == "" {
		a.dbName = defaultDatabase
	}

	// This just initializes the driver but does not open the network connection.
	a.db, err = sqlx.Open("mysql", a.dsn)
	if err != nil {
		return err
	}

	// Actually opening the network connection.
	err = a.db.Ping()
	if isMissingDb(err) {
		// Ignore missing database here. If we are initializing the database
		// missing DB is OK.
		err = nil
	}
	if err == nil {
		if config.MaxOpenConns > 0 {
			a.db.SetMaxOpenConns(config.MaxOpenConns)
		}
		if config.MaxIdleConns > 0 {
			a.db.SetMaxIdleConns(config.MaxIdleConns)
		}
		if config.ConnMaxLifetime > 0 {
			a.db.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetime) * time.Second)
		}
		if config.SqlTimeout > 0 {
			a.sqlTimeout = time.Duration(config.SqlTimeout) * time.Second
			// We allocate txTimeoutMultiplier times sqlTimeout for transactions.
			a.txTimeout = time.Duration(float64(config.SqlTimeout)*txTimeoutMultiplier) * time.Second
		}
	}
	return err
}

// Close closes the underlying database connection
func (a *adapter) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
		a.db = nil
		a.version = -1
	}
	return err
}

// IsOpen returns true if connection to database has been established. It does not check if
// connection is actually live.
func (a *adapter) IsOpen() bool {
	return a.db != nil
}

// GetDbVersion returns current database version.
func (a *adapter) GetDbVersion() (int, error) {
	if a.version > 0 {
		return a.version, nil
	}

	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var vers int
	err := a.db.GetContext(ctx, &vers, "SELECT `value` FROM kvmeta WHERE `key`='version'")
	if err != nil {
		if isMissingDb(err) || isMissingTable(err) || err == sql.ErrNoRows {
			err = errors.New("Database not initialized")
		}
		return -1, err
	}

	a.version = vers

	return vers, nil
}

// CheckDbVersion checks whether the actual DB version matches the expected version of this adapter.
func (a *adapter) CheckDbVersion() error {
	version, err := a.GetDbVersion()
	if err != nil {
		return err
	}

	if version != adpVersion {
		return errors.New("Invalid database version " + strconv.Itoa(version) +
			". Expected " + strconv.Itoa(adpVersion))
	}

	return nil
}

// GetName returns string that adapter uses to register itself with store.
func (a *adapter) GetName() string {
	return adapterName
}

// CreateDb initializes the storage.
func (a *adapter) CreateDb(reset bool) error {
	var err error
	var tx *sql.Tx

	// Can't use an existing connection because it's configured with a database name which may not exist.
	// Don't care if it does not close cleanly.
	a.db.Close()

	// This DSN has been parsed before and produced no error, not checking for errors here.
	cfg, _ := ms.ParseDSN(a.dsn)
	// Clear database name
	cfg.DBName = ""

	a.db, err = sqlx.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return err
	}

	if tx, err = a.db.Begin(); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			// MySQL auto-commits on every CREATE TABLE, rollback only undoes the data.
			tx.Rollback()
		}
	}()

	if reset {
		if _, err = tx.Exec("DROP DATABASE IF EXISTS " + a.dbName); err != nil {
			return err
		}
	}

	if _, err = tx.Exec("CREATE DATABASE " + a.dbName + " CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci"); err != nil {
		return err
	}

	if _, err = tx.Exec("USE " + a.dbName); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE users(
			id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			username  VARCHAR(150) NOT NULL,
			email     VARCHAR(255) NOT NULL DEFAULT '',
			firstname VARCHAR(150) NOT NULL DEFAULT '',
			lastname  VARCHAR(150) NOT NULL DEFAULT '',
			image     VARCHAR(255) NOT NULL DEFAULT '',
			PRIMARY KEY(id),
			UNIQUE INDEX users_username(username)
		)`); err != nil {
		return err
	}

	// Friend requests and friendships. The ordered pair guarantees a single record
	// per pair of users regardless of direction.
	if _, err = tx.Exec(
		`CREATE TABLE friend_requests(
			id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			fromuser  BIGINT NOT NULL,
			touser    BIGINT NOT NULL,
			userlo    BIGINT NOT NULL,
			userhi    BIGINT NOT NULL,
			accepted  TINYINT NOT NULL DEFAULT 0,
			PRIMARY KEY(id),
			FOREIGN KEY(fromuser) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY(touser) REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE INDEX friend_requests_pair(userlo, userhi)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"CREATE TABLE `groups`(" +
			`id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			name      VARCHAR(255) NOT NULL,
			image     VARCHAR(255) NOT NULL DEFAULT '',
			admin     BIGINT NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(admin) REFERENCES users(id) ON DELETE CASCADE
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"CREATE TABLE group_members(" +
			`id      INT NOT NULL AUTO_INCREMENT,
			groupid BIGINT NOT NULL,
			userid  BIGINT NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(groupid) REFERENCES ` + "`groups`" + `(id) ON DELETE CASCADE,
			FOREIGN KEY(userid) REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE INDEX group_members_group_user(groupid, userid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"CREATE TABLE group_requests(" +
			`id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			groupid   BIGINT NOT NULL,
			userid    BIGINT NOT NULL,
			accepted  TINYINT NOT NULL DEFAULT 0,
			PRIMARY KEY(id),
			FOREIGN KEY(groupid) REFERENCES ` + "`groups`" + `(id) ON DELETE CASCADE,
			FOREIGN KEY(userid) REFERENCES users(id) ON DELETE CASCADE,
			INDEX group_requests_group(groupid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE direct_messages(
			id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			fromuser  BIGINT NOT NULL,
			touser    BIGINT NOT NULL,
			content   TEXT NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(fromuser) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY(touser) REFERENCES users(id) ON DELETE CASCADE,
			INDEX direct_messages_pair(fromuser, touser)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"CREATE TABLE group_messages(" +
			`id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			groupid   BIGINT NOT NULL,
			fromuser  BIGINT NOT NULL,
			content   TEXT NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(groupid) REFERENCES ` + "`groups`" + `(id) ON DELETE CASCADE,
			FOREIGN KEY(fromuser) REFERENCES users(id) ON DELETE CASCADE,
			INDEX group_messages_group(groupid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"CREATE TABLE kvmeta(" +
			"`key`   VARCHAR(64) NOT NULL," +
			"`value` TEXT," +
			"PRIMARY KEY(`key`)" +
			")"); err != nil {
		return err
	}
	if _, err = tx.Exec("INSERT INTO kvmeta(`key`, `value`) VALUES('version', ?)", adpVersion); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	// Reconnect with the database selected for every pooled connection.
	a.db.Close()
	a.db, err = sqlx.Open("mysql", a.dsn)
	return err
}

// UserCreate creates a new user record.
func (a *adapter) UserCreate(user *t.User) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO users(id,createdat,username,email,firstname,lastname,image) VALUES(?,?,?,?,?,?,?)",
		int64(user.Id), user.CreatedAt, user.Username, user.Email, user.FirstName, user.LastName, user.Image)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// UserGet fetches a single user by user id. If user is not found it returns t.ErrNotFound.
func (a *adapter) UserGet(uid t.Uid) (*t.User, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var user t.User
	err := a.db.GetContext(ctx, &user,
		"SELECT id,createdat,username,email,firstname,lastname,image FROM users WHERE id=?", int64(uid))
	if err == sql.ErrNoRows {
		return nil, t.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserGetAll fetches users by IDs. Missing users are skipped.
func (a *adapter) UserGetAll(ids ...t.Uid) ([]t.User, error) {
	uids := common.UidsToInterfaces(common.NormalizeUids(ids))
	if len(uids) == 0 {
		return nil, nil
	}

	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}

	q, uids, _ := sqlx.In("SELECT id,createdat,username,email,firstname,lastname,image FROM users WHERE id IN (?)", uids)
	rows, err := a.db.QueryxContext(ctx, q, uids...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []t.User
	for rows.Next() {
		var user t.User
		if err = rows.StructScan(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// FriendRequestCreate saves a new friend request.
func (a *adapter) FriendRequestCreate(req *t.FriendRequest) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	lo, hi := common.OrderedPair(req.From, req.To)
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO friend_requests(id,createdat,fromuser,touser,userlo,userhi,accepted) VALUES(?,?,?,?,?,?,?)",
		req.Id, req.CreatedAt, int64(req.From), int64(req.To), int64(lo), int64(hi), req.Accepted)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// FriendRequestGet loads a friend request.
func (a *adapter) FriendRequestGet(id int64) (*t.FriendRequest, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var req t.FriendRequest
	var from, to int64
	err := a.db.QueryRowContext(ctx,
		"SELECT id,createdat,fromuser,touser,accepted FROM friend_requests WHERE id=?", id).
		Scan(&req.Id, &req.CreatedAt, &from, &to, &req.Accepted)
	if err == sql.ErrNoRows {
		return nil, t.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	req.From, req.To = t.Uid(from), t.Uid(to)
	return &req, nil
}

// FriendRequestAccept marks the request as accepted.
func (a *adapter) FriendRequestAccept(id int64) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	_, err := a.db.ExecContext(ctx, "UPDATE friend_requests SET accepted=1 WHERE id=?", id)
	return err
}

// FriendRequestDelete deletes the request.
func (a *adapter) FriendRequestDelete(id int64) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	res, err := a.db.ExecContext(ctx, "DELETE FROM friend_requests WHERE id=?", id)
	return checkFound(res, err)
}

// FriendshipExists checks if two users are connected by a request in the given state.
func (a *adapter) FriendshipExists(x, y t.Uid, accepted bool) (bool, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	lo, hi := common.OrderedPair(x, y)
	var count int
	err := a.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM friend_requests WHERE userlo=? AND userhi=? AND accepted=?",
		int64(lo), int64(hi), accepted)
	return count > 0, err
}

// GroupCreate saves a new group.
func (a *adapter) GroupCreate(grp *t.Group) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO `groups`(id,createdat,name,image,admin) VALUES(?,?,?,?,?)",
		grp.Id, grp.CreatedAt, grp.Name, grp.Image, int64(grp.Admin))
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// GroupGet loads a group.
func (a *adapter) GroupGet(id int64) (*t.Group, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var grp t.Group
	err := a.db.GetContext(ctx, &grp, "SELECT id,createdat,name,image,admin FROM `groups` WHERE id=?", id)
	if err == sql.ErrNoRows {
		return nil, t.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &grp, nil
}

// GroupDelete deletes the group, dependent records are removed by cascade.
func (a *adapter) GroupDelete(id int64) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	res, err := a.db.ExecContext(ctx, "DELETE FROM `groups` WHERE id=?", id)
	return checkFound(res, err)
}

// GroupMembers returns IDs of group members.
func (a *adapter) GroupMembers(id int64) ([]t.Uid, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var ids []int64
	if err := a.db.SelectContext(ctx, &ids, "SELECT userid FROM group_members WHERE groupid=? ORDER BY id", id); err != nil {
		return nil, err
	}
	return toUids(ids), nil
}

// GroupMemberExists checks if the user is a member of the group.
func (a *adapter) GroupMemberExists(id int64, uid t.Uid) (bool, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var count int
	err := a.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM group_members WHERE groupid=? AND userid=?", id, int64(uid))
	return count > 0, err
}

// GroupMembersAdd adds users to the group, returns IDs of newly added members.
func (a *adapter) GroupMembersAdd(id int64, uids []t.Uid) ([]t.Uid, error) {
	uids = common.NormalizeUids(uids)
	if len(uids) == 0 {
		return nil, nil
	}

	ctx, cancel := a.getContextForTx()
	if cancel != nil {
		defer cancel()
	}
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	existing, err := membersIn(ctx, tx, id, uids)
	if err != nil {
		return nil, err
	}
	added := common.Difference(uids, existing)
	for _, uid := range added {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO group_members(groupid,userid) VALUES(?,?)", id, int64(uid)); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return added, nil
}

// GroupMembersRemove removes users from the group, returns IDs of users which were members.
func (a *adapter) GroupMembersRemove(id int64, uids []t.Uid) ([]t.Uid, error) {
	uids = common.NormalizeUids(uids)
	if len(uids) == 0 {
		return nil, nil
	}

	ctx, cancel := a.getContextForTx()
	if cancel != nil {
		defer cancel()
	}
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	existing, err := membersIn(ctx, tx, id, uids)
	if err != nil {
		return nil, err
	}
	removed := common.Intersection(uids, existing)
	if len(removed) > 0 {
		var q string
		var args []interface{}
		q, args, err = sqlx.In("DELETE FROM group_members WHERE groupid=? AND userid IN (?)",
			id, common.UidsToInterfaces(removed))
		if err != nil {
			return nil, err
		}
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return removed, nil
}

// GroupRequestCreate saves a new join request.
func (a *adapter) GroupRequestCreate(req *t.GroupRequest) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	_, err := a.db.ExecContext(ctx,
		"INSERT INTO group_requests(id,createdat,groupid,userid,accepted) VALUES(?,?,?,?,?)",
		req.Id, req.CreatedAt, req.Group, int64(req.User), req.Accepted)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// GroupRequestGet loads a join request.
func (a *adapter) GroupRequestGet(id int64) (*t.GroupRequest, error) {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var req t.GroupRequest
	var user int64
	err := a.db.QueryRowContext(ctx,
		"SELECT id,createdat,groupid,userid,accepted FROM group_requests WHERE id=?", id).
		Scan(&req.Id, &req.CreatedAt, &req.Group, &user, &req.Accepted)
	if err == sql.ErrNoRows {
		return nil, t.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	req.User = t.Uid(user)
	return &req, nil
}

// GroupRequestAccept marks the join request as accepted.
func (a *adapter) GroupRequestAccept(id int64) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	_, err := a.db.ExecContext(ctx, "UPDATE group_requests SET accepted=1 WHERE id=?", id)
	return err
}

// MessageSave saves a message to the direct or the group message table.
func (a *adapter) MessageSave(msg *t.Message) error {
	ctx, cancel := a.getContext()
	if cancel != nil {
		defer cancel()
	}
	var err error
	if msg.IsGroup() {
		_, err = a.db.ExecContext(ctx,
			"INSERT INTO group_messages(id,createdat,groupid,fromuser,content) VALUES(?,?,?,?,?)",
			msg.Id, msg.CreatedAt, msg.Group, int64(msg.From), msg.Text)
	} else {
		_, err = a.db.ExecContext(ctx,
			"INSERT INTO direct_messages(id,createdat,fromuser,touser,content) VALUES(?,?,?,?,?)",
			msg.Id, msg.CreatedAt, int64(msg.From), int64(msg.To), msg.Text)
	}
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// GetTestDB returns the connection, used by integration tests.
func (a *adapter) GetTestDB() any {
	return a.db
}

func membersIn(ctx context.Context, tx *sqlx.Tx, id int64, uids []t.Uid) ([]t.Uid, error) {
	q, args, err := sqlx.In("SELECT userid FROM group_members WHERE groupid=? AND userid IN (?)",
		id, common.UidsToInterfaces(uids))
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err = tx.SelectContext(ctx, &ids, q, args...); err != nil {
		return nil, err
	}
	return toUids(ids), nil
}

func toUids(ids []int64) []t.Uid {
	uids := make([]t.Uid, len(ids))
	for i, id := range ids {
		uids[i] = t.Uid(id)
	}
	return uids
}

func checkFound(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return t.ErrNotFound
	}
	return nil
}

// Check if MySQL error is a Error Code: 1062. Duplicate entry ... for key ...
func isDupe(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1062
}

func isMissingDb(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1049
}

func isMissingTable(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1146
}

// GetTestAdapter returns an unregistered adapter object. It's used by the integration tests.
func GetTestAdapter() store_adapter.Adapter {
	return &adapter{}
}

func init() {
	store.RegisterAdapter(&adapter{})
}
