package github

const (
	listsPageSize = 20
	itemsPageSize = 50
)

// fetchListsQuery reads only List summaries. items(first: 0) gets the repository count without
// walking items, which would exceed GitHub's per-query resource limit.
const fetchListsQuery = `
query FetchUserLists($username: String!, $first: Int!, $cursor: String) {
  user(login: $username) {
    lists(first: $first, after: $cursor) {
      totalCount
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        id
        name
        description
        isPrivate
        lastAddedAt
        slug
        createdAt
        updatedAt
        items(first: 0) {
          totalCount
        }
      }
    }
  }
}`

const fetchListItemsQuery = `
query FetchListItems($listId: ID!, $first: Int!, $cursor: String) {
  node(id: $listId) {
    ... on UserList {
      items(first: $first, after: $cursor) {
        pageInfo {
          hasNextPage
          endCursor
        }
        nodes {
          __typename
          ... on Repository {
            name
            url
            isPrivate
            description
            stargazerCount
            owner { login }
          }
        }
      }
    }
  }
}`

const createListMutation = `
mutation CreateUserList($name: String!, $description: String, $isPrivate: Boolean!) {
  createUserList(input: {
    name: $name,
    description: $description,
    isPrivate: $isPrivate
  }) {
    list {
      id
      name
      description
      isPrivate
      slug
      createdAt
      updatedAt
    }
    viewer {
      login
    }
  }
}`

const updateListMutation = `
mutation UpdateUserList($listId: ID!, $name: String, $description: String, $isPrivate: Boolean) {
  updateUserList(input: {
    listId: $listId,
    name: $name,
    description: $description,
    isPrivate: $isPrivate
  }) {
    list {
      id
      name
      description
      isPrivate
      slug
      updatedAt
    }
  }
}`

const deleteListMutation = `
mutation DeleteUserList($listId: ID!) {
  deleteUserList(input: {
    listId: $listId
  }) {
    user {
      login
    }
  }
}`

const setMembershipMutation = `
mutation UpdateUserListsForItem($itemId: ID!, $listIds: [ID!]!) {
  updateUserListsForItem(input: {
    itemId: $itemId,
    listIds: $listIds
  }) {
    lists {
      id
      name
      description
    }
    item {
      ... on Repository {
        name
        url
        isPrivate
        description
        stargazerCount
        owner { login }
      }
    }
  }
}`
