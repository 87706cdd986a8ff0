package urls

// Documentation and package links shown in command help and error hints.

// Docs is the documentation site for the floating social button.
const Docs = "https://flochat.dev/docs/"

// PackagePage is the npm page of the React package the generated code imports.
const PackagePage = "https://www.npmjs.com/package/@flochat/react"

// ComponentProps documents every prop the generated component accepts.
const ComponentProps = "https://flochat.dev/docs/props/"

// Troubleshooting covers clipboard, colour picker and preview server issues.
const Troubleshooting = "https://flochat.dev/docs/wizard/troubleshooting/"

// Issues is where bugs in the wizard are reported.
const Issues = "https://github.com/muurk/flochat/issues"
