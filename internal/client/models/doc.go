// Package models defines the data shapes exchanged with the PointQuest admin
// API: the admin profile and role, the paginated list wrapper, and the task,
// submission, reward, pool, order and message resources.
//
// Resources are addressed by their business numbers (TaskNo, RewardNo, ...),
// and every list endpoint returns a Page.
package models
